package repository

import (
	"context"

	"github.com/johnsmera/checkout/internal/domain/model"
)

type ProductRepository interface {
	ListActive(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, productID string) (model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Count(ctx context.Context) (int64, error)
}
