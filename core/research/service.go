package research

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateMaterial(ctx context.Context, mat Material) (Material, error)
		// QueryAllMaterials returns every research material, newest first.
		QueryAllMaterials(ctx context.Context) ([]Material, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ownerID string, nm NewMaterial) (Material, error) {
	now := time.Now().UTC()
	mat := Material{
		Unit:        nm.Unit,
		Title:       nm.Title,
		Description: nm.Description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateMaterial(ctx, mat)
}

func (svc *Service) All(ctx context.Context) ([]Material, error) {
	return svc.repo.QueryAllMaterials(ctx)
}
