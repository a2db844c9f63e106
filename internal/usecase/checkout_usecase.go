package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/johnsmera/checkout/internal/domain/model"
	"github.com/johnsmera/checkout/internal/payment"
	repo "github.com/johnsmera/checkout/internal/repository"
)

const (
	// simulated gateway latencies, as observed by the buyer
	createOrderDelay    = 800 * time.Millisecond
	processPaymentDelay = 2 * time.Second

	// probability that a payment attempt is declined
	paymentFailureRate = 0.2
)

// Clock abstracts time.Now for card-expiry validation.
type Clock interface {
	Now() time.Time
}

// Rand draws the payment outcome. Production uses math/rand; tests inject
// fixed values instead of relying on the distribution.
type Rand interface {
	Float64() float64
}

// Sleeper simulates gateway latency. Tests inject a no-op.
type Sleeper interface {
	Sleep(d time.Duration)
}

// ClearCartFunc empties a user's cart. The orchestrator holds only this
// capability, not the whole cart store, and invokes it exactly once per
// confirmed payment.
type ClearCartFunc func(ctx context.Context, userID string) error

// CheckoutUsecase drives the order lifecycle: validate the request, snapshot
// the cart into an order, simulate the payment attempt, and clear the cart
// only once the order is actually paid.
type CheckoutUsecase struct {
	orderRepo   repo.OrderRepository
	cartRepo    repo.CartRepository
	clock       Clock
	rng         Rand
	sleeper     Sleeper
	onOrderPaid ClearCartFunc
}

func NewCheckoutUsecase(
	orderRepo repo.OrderRepository,
	cartRepo repo.CartRepository,
	clock Clock,
	rng Rand,
	sleeper Sleeper,
	onOrderPaid ClearCartFunc,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		clock:       clock,
		rng:         rng,
		sleeper:     sleeper,
		onOrderPaid: onOrderPaid,
	}
}

type CreateOrderInput struct {
	PaymentMethod model.PaymentMethod
	PaymentData   *model.CreditCardData
}

// CreateOrder validates the request, reads the current cart and creates a
// pending order from it. All validation happens before any state mutation:
// an invalid request never reaches the order store. The cart is deliberately
// NOT cleared here - the order must survive even if clearing later fails.
func (u *CheckoutUsecase) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (model.Order, error) {
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.PaymentMethod == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "payment method is required")
	}

	switch in.PaymentMethod {
	case model.PaymentMethodPix, model.PaymentMethodBoleto:
		// no extra data needed
	case model.PaymentMethodCreditCard:
		if in.PaymentData == nil {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "card data is required")
		}
		if err := u.validateCard(*in.PaymentData); err != nil {
			return model.Order{}, err
		}
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	cart, err := u.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if len(cart.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	u.sleeper.Sleep(createOrderDelay)

	order, err := u.orderRepo.Create(ctx, in.PaymentMethod, in.PaymentData, cart, userID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return order, nil
}

// ProcessPayment resolves a pending order to paid or failed. A declined
// attempt is a normal business outcome, returned as a failed order rather
// than an error. The cart-clear capability fires only when this call is
// the one that moved the order to paid, so a failed, pending, expired or
// already-paid order never empties the cart.
func (u *CheckoutUsecase) ProcessPayment(ctx context.Context, userID string, orderID string) (model.Order, error) {
	order, err := u.findOwnOrder(ctx, userID, orderID)
	if err != nil {
		return model.Order{}, err
	}

	u.sleeper.Sleep(processPaymentDelay)

	if u.rng.Float64() < paymentFailureRate {
		failed, _, err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusFailed)
		if err != nil {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		return failed, nil
	}

	updated, changed, err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusPaid)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	// the store may have refused the transition (order expired meanwhile,
	// or a replay on an already-terminal order)
	if changed && u.onOrderPaid != nil {
		if err := u.onOrderPaid(ctx, order.UserID); err != nil {
			// the order stays paid; only the cleanup failed
			return updated, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return updated, nil
}

// CheckOrderStatus is a pure read plus the store's lazy-expiry side effect.
func (u *CheckoutUsecase) CheckOrderStatus(ctx context.Context, userID string, orderID string) (model.Order, error) {
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.findOwnOrder(ctx, userID, orderID)
}

// findOwnOrder loads an order on behalf of a user. A foreign order is
// indistinguishable from a missing one.
func (u *CheckoutUsecase) findOwnOrder(ctx context.Context, userID string, orderID string) (model.Order, error) {
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if order.UserID != userID {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}

	return order, nil
}

func (u *CheckoutUsecase) validateCard(card model.CreditCardData) error {
	if !payment.ValidateCardNumber(card.CardNumber) {
		return NewHTTPError(http.StatusBadRequest, "invalid card number")
	}
	if len(strings.TrimSpace(card.CardName)) < 3 {
		return NewHTTPError(http.StatusBadRequest, "invalid card name")
	}
	if !payment.ValidateExpiryDate(card.ExpiryDate, u.clock.Now()) {
		return NewHTTPError(http.StatusBadRequest, "invalid or expired card")
	}
	if !payment.ValidateCVV(card.CVV) {
		return NewHTTPError(http.StatusBadRequest, "invalid cvv")
	}
	return nil
}
