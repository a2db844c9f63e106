package model

// CartItem is a cart line. UnitPrice is the price snapshot taken when the
// item was added; later catalog price changes never touch it.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Cart holds the current line items of one user.
// Invariant: Total == sum(UnitPrice*Quantity) over Items.
type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}
