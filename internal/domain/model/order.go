package model

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	// reserved for an asynchronous flow; the synchronous flow jumps straight
	// from pending to a terminal status
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusExpired    OrderStatus = "expired"
)

// Terminal reports whether no further status transition is accepted.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed || s == OrderStatusExpired
}

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// Order is an immutable snapshot of the cart at checkout time plus the
// payment state machine around it. Items and Total never change after
// creation, regardless of what happens to the cart afterwards.
type Order struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Items          []CartItem     `json:"items"`
	Total          int64          `json:"total"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	PaymentDetails PaymentDetails `json:"payment_details"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	// set only for pix (+30min) and boleto (+3 days)
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
