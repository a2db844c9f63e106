package usecase

import (
	"context"

	"github.com/johnsmera/checkout/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, method model.PaymentMethod, card *model.CreditCardData, cart model.Cart, userID string) (model.Order, error) {
	args := m.Called(ctx, method, card, cart, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, bool, error) {
	args := m.Called(ctx, orderID, status)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetCart(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) AddItem(ctx context.Context, userID string, productID string, quantity int64, unitPrice int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity, unitPrice)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartRepoMock) UpdateItem(ctx context.Context, userID string, itemID string, quantity int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartRepoMock) RemoveItem(ctx context.Context, userID string, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListActive(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
