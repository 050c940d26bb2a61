package repository

import (
	"context"

	"dpmarketpro/internal/domain/entity"
)

type ProductRepository interface {
	// Create persists a new record; the gateway assigns ID and CreatedAt.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List returns products newest-created first.
	List(ctx context.Context, activeOnly bool) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, category entity.Category, activeOnly bool) ([]*entity.Product, error)
	// Update is a full-record replace keyed by product.ID.
	Update(ctx context.Context, product *entity.Product) error
	// SetActive flips only the active flag, leaving every other field alone.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes the record permanently.
	Delete(ctx context.Context, id string) error
}
