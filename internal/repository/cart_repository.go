package repository

import (
	"context"

	"github.com/johnsmera/checkout/internal/domain/model"
)

// CartRepository owns the carts, one per user. Implementations hand out
// copies, never references into their own state, and recompute the cart
// total after every mutation.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (model.Cart, error)
	// AddItem merges by product: an existing line for the same product gets
	// its quantity incremented and keeps its price snapshot; otherwise a new
	// line is appended with unitPrice as the snapshot.
	AddItem(ctx context.Context, userID string, productID string, quantity int64, unitPrice int64) (model.CartItem, error)
	// UpdateItem sets the quantity verbatim. ErrNotFound when the line is absent.
	UpdateItem(ctx context.Context, userID string, itemID string, quantity int64) (model.CartItem, error)
	// RemoveItem is a no-op when the line is absent.
	RemoveItem(ctx context.Context, userID string, itemID string) error
	Clear(ctx context.Context, userID string) error
}
