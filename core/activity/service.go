package activity

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateActivity(ctx context.Context, act Activity) (Activity, error)
		// QueryRecentActivity returns the latest entries, newest first.
		QueryRecentActivity(ctx context.Context, limit int) ([]Activity, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Log(ctx context.Context, action string) (Activity, error) {
	act := Activity{
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateActivity(ctx, act)
}

func (svc *Service) Recent(ctx context.Context, limit int) ([]Activity, error) {
	return svc.repo.QueryRecentActivity(ctx, limit)
}
