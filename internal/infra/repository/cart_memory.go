package repository

import (
	"context"
	"sync"

	"github.com/johnsmera/checkout/internal/domain/model"
	repo "github.com/johnsmera/checkout/internal/repository"
)

// IDGenerator creates ids for new records (UUIDs in production).
type IDGenerator interface {
	NewID() string
}

// CartMemoryRepository keeps one cart per user in process memory.
// Carts live only as long as the process; that is the contract.
type CartMemoryRepository struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
	idGen IDGenerator
}

func NewCartMemoryRepository(idGen IDGenerator) *CartMemoryRepository {
	return &CartMemoryRepository{
		carts: make(map[string]*model.Cart),
		idGen: idGen,
	}
}

func (r *CartMemoryRepository) GetCart(ctx context.Context, userID string) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneCart(r.cart(userID)), nil
}

func (r *CartMemoryRepository) AddItem(ctx context.Context, userID string, productID string, quantity int64, unitPrice int64) (model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.cart(userID)

	// same product: add quantities, keep the original price snapshot
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			recalcTotal(cart)
			return cart.Items[i], nil
		}
	}

	item := model.CartItem{
		ID:        r.idGen.NewID(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	cart.Items = append(cart.Items, item)
	recalcTotal(cart)
	return item, nil
}

func (r *CartMemoryRepository) UpdateItem(ctx context.Context, userID string, itemID string, quantity int64) (model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.cart(userID)
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			recalcTotal(cart)
			return cart.Items[i], nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}

func (r *CartMemoryRepository) RemoveItem(ctx context.Context, userID string, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.cart(userID)
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}
	// absent item is not an error
	recalcTotal(cart)
	return nil
}

func (r *CartMemoryRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = &model.Cart{Items: []model.CartItem{}}
	return nil
}

// cart returns the stored cart for userID, creating an empty one on first use.
// Callers must hold mu.
func (r *CartMemoryRepository) cart(userID string) *model.Cart {
	c, ok := r.carts[userID]
	if !ok {
		c = &model.Cart{Items: []model.CartItem{}}
		r.carts[userID] = c
	}
	return c
}

func recalcTotal(cart *model.Cart) {
	var total int64
	for _, item := range cart.Items {
		total += item.UnitPrice * item.Quantity
	}
	cart.Total = total
}

func cloneCart(cart *model.Cart) model.Cart {
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return model.Cart{Items: items, Total: cart.Total}
}
