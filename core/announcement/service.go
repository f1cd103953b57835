package announcement

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateAnnouncement(ctx context.Context, ann Announcement) (Announcement, error)
		// QueryAllAnnouncements returns every announcement, newest first.
		QueryAllAnnouncements(ctx context.Context) ([]Announcement, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, authorID string, na NewAnnouncement) (Announcement, error) {
	now := time.Now().UTC()
	ann := Announcement{
		Title:     na.Title,
		Body:      na.Body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateAnnouncement(ctx, ann)
}

func (svc *Service) All(ctx context.Context) ([]Announcement, error) {
	return svc.repo.QueryAllAnnouncements(ctx)
}
