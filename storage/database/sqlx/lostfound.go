package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/lostfound"
)

type lostFoundRepository struct {
	db *sqlx.DB
}

var _ lostfound.Repository = (*lostFoundRepository)(nil)

func NewLostFoundRepository(db *sql.DB) *lostFoundRepository {
	return &lostFoundRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *lostFoundRepository) CreateItem(ctx context.Context, itm lostfound.Item) (lostfound.Item, error) {
	if itm.ID == "" {
		itm.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO lostfound_item (id, title, description, owner_id, created_at, updated_at)
		VALUES (:id, :title, :description, :owner_id, :created_at, :updated_at)`,
		itm,
	)
	if err != nil {
		return lostfound.Item{}, errors.Wrap(err, "inserting lost-and-found item")
	}
	return itm, nil
}

func (repo *lostFoundRepository) QueryAllItems(ctx context.Context) ([]lostfound.Item, error) {
	items := make([]lostfound.Item, 0)
	err := repo.db.SelectContext(ctx, &items, `SELECT * FROM lostfound_item ORDER BY created_at DESC`)
	return items, errors.Wrap(err, "querying lost-and-found items")
}
