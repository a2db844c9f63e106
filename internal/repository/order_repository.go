package repository

import (
	"context"

	"github.com/johnsmera/checkout/internal/domain/model"
)

// OrderRepository owns the orders. Implementations hand out copies.
type OrderRepository interface {
	// Create snapshots the cart's items and total into a new pending order,
	// generating id, timestamps and the method-specific payment details
	// (and expiry, for pix/boleto). The cart itself is left untouched;
	// clearing it on payment is the orchestrator's job.
	Create(ctx context.Context, method model.PaymentMethod, card *model.CreditCardData, cart model.Cart, userID string) (model.Order, error)
	// FindByID applies lazy expiration: a pending order whose deadline has
	// passed is flipped to expired, persisted, and returned as such.
	// ErrNotFound when the order is absent.
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// UpdateStatus sets the status and updated_at. Orders already in a
	// terminal status are returned unchanged (idempotent no-op, not an
	// error); the boolean reports whether the requested status was actually
	// applied by this call. ErrNotFound when the order is absent.
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, bool, error)
}
