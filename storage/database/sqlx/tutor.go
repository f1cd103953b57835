package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/tutor"
)

type tutorRepository struct {
	db *sqlx.DB
}

var _ tutor.Repository = (*tutorRepository)(nil)

func NewTutorRepository(db *sql.DB) *tutorRepository {
	return &tutorRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *tutorRepository) CreateTutor(ctx context.Context, ttr tutor.Tutor) (tutor.Tutor, error) {
	if ttr.ID == "" {
		ttr.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO tutor (id, name, unit, email, phone, created_at, updated_at)
		VALUES (:id, :name, :unit, :email, :phone, :created_at, :updated_at)`,
		ttr,
	)
	if err != nil {
		return tutor.Tutor{}, errors.Wrap(err, "inserting tutor")
	}
	return ttr, nil
}

func (repo *tutorRepository) QueryAllTutors(ctx context.Context) ([]tutor.Tutor, error) {
	tutors := make([]tutor.Tutor, 0)
	err := repo.db.SelectContext(ctx, &tutors, `SELECT * FROM tutor ORDER BY created_at DESC`)
	return tutors, errors.Wrap(err, "querying tutors")
}
