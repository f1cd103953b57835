package lostfound

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateItem(ctx context.Context, itm Item) (Item, error)
		// QueryAllItems returns every lost-and-found item, newest first.
		QueryAllItems(ctx context.Context) ([]Item, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ownerID string, ni NewItem) (Item, error) {
	now := time.Now().UTC()
	itm := Item{
		Title:       ni.Title,
		Description: ni.Description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateItem(ctx, itm)
}

func (svc *Service) All(ctx context.Context) ([]Item, error) {
	return svc.repo.QueryAllItems(ctx)
}
