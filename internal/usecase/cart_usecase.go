package usecase

import (
	"context"
	"net/http"

	"github.com/johnsmera/checkout/internal/domain/model"
	repo "github.com/johnsmera/checkout/internal/repository"
)

// CartUsecase is the business logic behind /cart. The price written into the
// cart line is the catalog price at add time (snapshot).
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddCartInput struct {
	ProductID string
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

func (u *CartUsecase) GetCart(ctx context.Context, userID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return cart, nil
}

// AddToCart resolves the product, snapshots its price and merges the line
// into the cart (same product adds quantities).
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if !p.IsActive {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	if _, err := u.cartRepo.AddItem(ctx, userID, p.ID, in.Quantity, p.Price); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return u.GetCart(ctx, userID)
}

func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID string, itemID string, in UpdateCartItemInput) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if _, err := u.cartRepo.UpdateItem(ctx, userID, itemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return model.Cart{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return u.GetCart(ctx, userID)
}

func (u *CartUsecase) RemoveCartItem(ctx context.Context, userID string, itemID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.cartRepo.RemoveItem(ctx, userID, itemID); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return u.GetCart(ctx, userID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.cartRepo.Clear(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}
