package usecase

import (
	"context"
	"net/http"

	"github.com/johnsmera/checkout/internal/domain/model"
	repo "github.com/johnsmera/checkout/internal/repository"
)

// ProductUsecase backs the public catalog.
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductListOutput, error) {
	products, err := u.productRepo.ListActive(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return ProductListOutput{Items: products, Total: len(products)}, nil
}
