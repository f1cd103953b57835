package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/announcement"
)

type announcementRepository struct {
	db *sqlx.DB
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *sql.DB) *announcementRepository {
	return &announcementRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *announcementRepository) CreateAnnouncement(ctx context.Context, ann announcement.Announcement) (announcement.Announcement, error) {
	if ann.ID == "" {
		ann.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO announcement (id, title, body, author_id, created_at, updated_at)
		VALUES (:id, :title, :body, :author_id, :created_at, :updated_at)`,
		ann,
	)
	if err != nil {
		return announcement.Announcement{}, errors.Wrap(err, "inserting announcement")
	}
	return ann, nil
}

func (repo *announcementRepository) QueryAllAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	announcements := make([]announcement.Announcement, 0)
	err := repo.db.SelectContext(ctx, &announcements, `SELECT * FROM announcement ORDER BY created_at DESC`)
	return announcements, errors.Wrap(err, "querying announcements")
}
