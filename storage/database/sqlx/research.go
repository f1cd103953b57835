package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/research"
)

type researchRepository struct {
	db *sqlx.DB
}

var _ research.Repository = (*researchRepository)(nil)

func NewResearchRepository(db *sql.DB) *researchRepository {
	return &researchRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *researchRepository) CreateMaterial(ctx context.Context, mat research.Material) (research.Material, error) {
	if mat.ID == "" {
		mat.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO research_material (id, unit, title, description, owner_id, created_at, updated_at)
		VALUES (:id, :unit, :title, :description, :owner_id, :created_at, :updated_at)`,
		mat,
	)
	if err != nil {
		return research.Material{}, errors.Wrap(err, "inserting research material")
	}
	return mat, nil
}

func (repo *researchRepository) QueryAllMaterials(ctx context.Context) ([]research.Material, error) {
	materials := make([]research.Material, 0)
	err := repo.db.SelectContext(ctx, &materials, `SELECT * FROM research_material ORDER BY created_at DESC`)
	return materials, errors.Wrap(err, "querying research materials")
}
