package repository

import (
	"context"
	"sync"
	"time"

	"github.com/johnsmera/checkout/internal/domain/model"
	"github.com/johnsmera/checkout/internal/payment"
	repo "github.com/johnsmera/checkout/internal/repository"
)

// Clock abstracts time.Now so expiration can be tested.
type Clock interface {
	Now() time.Time
}

// OrderMemoryRepository keeps all orders in a process-local map.
// It exclusively owns the records; every return value is a copy.
type OrderMemoryRepository struct {
	mu     sync.Mutex
	orders map[string]*model.Order
	idGen  IDGenerator
	clock  Clock
}

func NewOrderMemoryRepository(idGen IDGenerator, clock Clock) *OrderMemoryRepository {
	return &OrderMemoryRepository{
		orders: make(map[string]*model.Order),
		idGen:  idGen,
		clock:  clock,
	}
}

func (r *OrderMemoryRepository) Create(ctx context.Context, method model.PaymentMethod, card *model.CreditCardData, cart model.Cart, userID string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	details, expiresAt := payment.Generate(method, card, now)

	// snapshot: the order keeps these items/total no matter what happens
	// to the cart afterwards
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := &model.Order{
		ID:             r.idGen.NewID(),
		UserID:         userID,
		Items:          items,
		Total:          cart.Total,
		PaymentMethod:  method,
		PaymentDetails: details,
		Status:         model.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      expiresAt,
	}

	r.orders[order.ID] = order
	return cloneOrder(order), nil
}

func (r *OrderMemoryRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}

	// lazy expiration: no background timer, the deadline is applied on read
	// and written back so later reads stay stable
	if r.expired(order) {
		order.Status = model.OrderStatusExpired
		order.UpdatedAt = r.clock.Now()
	}

	return cloneOrder(order), nil
}

func (r *OrderMemoryRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, false, repo.ErrNotFound
	}

	// the deadline may have passed while the caller was processing
	if r.expired(order) {
		order.Status = model.OrderStatusExpired
		order.UpdatedAt = r.clock.Now()
	}

	// terminal orders are returned as-is: double transitions are silently
	// absorbed instead of surfacing as errors
	if order.Status.Terminal() {
		return cloneOrder(order), false, nil
	}

	order.Status = status
	order.UpdatedAt = r.clock.Now()
	return cloneOrder(order), true, nil
}

// expired reports whether a still-pending order is past its deadline.
// Callers must hold mu.
func (r *OrderMemoryRepository) expired(order *model.Order) bool {
	if order.ExpiresAt == nil || order.Status != model.OrderStatusPending {
		return false
	}
	return r.clock.Now().After(*order.ExpiresAt)
}

func cloneOrder(order *model.Order) model.Order {
	out := *order
	out.Items = make([]model.CartItem, len(order.Items))
	copy(out.Items, order.Items)
	if order.ExpiresAt != nil {
		t := *order.ExpiresAt
		out.ExpiresAt = &t
	}
	return out
}
