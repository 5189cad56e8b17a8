package repository

import (
	"context"

	"nexus-asset-manager/internal/domain"
)

type AssetRepository interface {
	// List returns every asset, newest first.
	List(ctx context.Context) ([]domain.Asset, error)
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	// Upsert inserts or replaces the asset with the same id.
	Upsert(ctx context.Context, asset *domain.Asset) error
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
}

type DocumentRepository interface {
	List(ctx context.Context) ([]domain.DocumentTemplate, error)
	GetByID(ctx context.Context, id string) (*domain.DocumentTemplate, error)
	Create(ctx context.Context, doc *domain.DocumentTemplate) error
	Update(ctx context.Context, doc *domain.DocumentTemplate) error
	Delete(ctx context.Context, id string) error
}
