package post

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreatePost(ctx context.Context, pst Post) (Post, error)
		GetPostsByOwner(ctx context.Context, ownerID string) ([]Post, error)
		// QueryAllPosts returns every post with OwnerEmail populated, newest first.
		QueryAllPosts(ctx context.Context) ([]Post, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ownerID string, np NewPost) (Post, error) {
	now := time.Now().UTC()
	pst := Post{
		Title:     np.Title,
		Body:      np.Body,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreatePost(ctx, pst)
}

func (svc *Service) Mine(ctx context.Context, ownerID string) ([]Post, error) {
	return svc.repo.GetPostsByOwner(ctx, ownerID)
}

func (svc *Service) All(ctx context.Context) ([]Post, error) {
	return svc.repo.QueryAllPosts(ctx)
}
