package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/activity"
)

type activityRepository struct {
	db *sqlx.DB
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *sql.DB) *activityRepository {
	return &activityRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *activityRepository) CreateActivity(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	if act.ID == "" {
		act.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO activity (id, action, created_at)
		VALUES (:id, :action, :created_at)`,
		act,
	)
	if err != nil {
		return activity.Activity{}, errors.Wrap(err, "inserting activity")
	}
	return act, nil
}

func (repo *activityRepository) QueryRecentActivity(ctx context.Context, limit int) ([]activity.Activity, error) {
	acts := make([]activity.Activity, 0)
	err := repo.db.SelectContext(ctx, &acts, `SELECT * FROM activity ORDER BY created_at DESC LIMIT $1`, limit)
	return acts, errors.Wrap(err, "querying recent activity")
}
