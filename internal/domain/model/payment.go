package model

import "time"

// PaymentDetails is a tagged union keyed by the order's payment method:
// exactly one of the three fields is set. Generated once at order creation.
type PaymentDetails struct {
	Pix        *PixDetails        `json:"pix,omitempty"`
	CreditCard *CreditCardDetails `json:"credit_card,omitempty"`
	Boleto     *BoletoDetails     `json:"boleto,omitempty"`
}

type PixDetails struct {
	QRCode string `json:"qr_code"`
	Code   string `json:"code"`
}

type CreditCardDetails struct {
	LastDigits string `json:"last_digits"`
	Brand      string `json:"brand"`
}

type BoletoDetails struct {
	BarCode string    `json:"bar_code"`
	DueDate time.Time `json:"due_date"`
}

// CreditCardData is the card input collected at checkout. Only the last
// digits and the detected brand survive into the stored order.
type CreditCardData struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"` // MM/YY
	CVV        string `json:"cvv"`
}
