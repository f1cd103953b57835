package tutor

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateTutor(ctx context.Context, ttr Tutor) (Tutor, error)
		// QueryAllTutors returns every tutor listing, newest first.
		QueryAllTutors(ctx context.Context) ([]Tutor, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTutor) (Tutor, error) {
	now := time.Now().UTC()
	ttr := Tutor{
		Name:      nt.Name,
		Unit:      nt.Unit,
		Email:     nt.Email,
		Phone:     nt.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateTutor(ctx, ttr)
}

func (svc *Service) All(ctx context.Context) ([]Tutor, error) {
	return svc.repo.QueryAllTutors(ctx)
}
