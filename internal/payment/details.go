package payment

import (
	"encoding/base64"
	"math/rand"
	"strings"
	"time"

	"github.com/johnsmera/checkout/internal/domain/model"
)

const (
	// PixExpiry is how long a PIX charge stays payable.
	PixExpiry = 30 * time.Minute
	// BoletoExpiry is how long a boleto stays payable (also its due date).
	BoletoExpiry = 3 * 24 * time.Hour

	pixCodeLength     = 32
	boletoBarCodeLen  = 47
	pixCodeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	qrCodePlaceholder = `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200"><rect width="200" height="200" fill="white"/><text x="100" y="100" text-anchor="middle" fill="black" font-size="12">QR Code PIX</text></svg>`
)

// Generate builds the synthetic gateway response for an order created at now:
// the method-specific details plus the payment deadline (nil when the method
// does not expire). card may be nil for non-card methods; the orchestrator
// validates it is present for credit_card before calling here.
// Values are randomized but the shape is fixed, so callers can rely on
// lengths and charsets.
func Generate(method model.PaymentMethod, card *model.CreditCardData, now time.Time) (model.PaymentDetails, *time.Time) {
	var details model.PaymentDetails
	var expiresAt *time.Time

	switch method {
	case model.PaymentMethodPix:
		details.Pix = &model.PixDetails{
			QRCode: QRCode(),
			Code:   PixCode(),
		}
		t := now.Add(PixExpiry)
		expiresAt = &t

	case model.PaymentMethodCreditCard:
		if card != nil {
			number := strings.ReplaceAll(card.CardNumber, " ", "")
			details.CreditCard = &model.CreditCardDetails{
				LastDigits: lastDigits(number),
				Brand:      DetectBrand(number),
			}
		}

	case model.PaymentMethodBoleto:
		t := now.Add(BoletoExpiry)
		details.Boleto = &model.BoletoDetails{
			BarCode: BoletoBarCode(),
			DueDate: t,
		}
		expiresAt = &t
	}

	return details, expiresAt
}

// PixCode returns a 32-character copy-and-paste code over [A-Z0-9].
func PixCode() string {
	var b strings.Builder
	b.Grow(pixCodeLength)
	for i := 0; i < pixCodeLength; i++ {
		b.WriteByte(pixCodeAlphabet[rand.Intn(len(pixCodeAlphabet))])
	}
	return b.String()
}

// QRCode returns a placeholder QR image as an SVG data URI.
func QRCode() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(qrCodePlaceholder))
}

// BoletoBarCode returns a 47-digit numeric barcode.
func BoletoBarCode() string {
	var b strings.Builder
	b.Grow(boletoBarCodeLen)
	for i := 0; i < boletoBarCodeLen; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// DetectBrand guesses the card brand from the first digit.
func DetectBrand(cardNumber string) string {
	number := strings.ReplaceAll(cardNumber, " ", "")
	if number == "" {
		return "unknown brand"
	}

	switch number[0] {
	case '4':
		return "Visa"
	case '5':
		return "Mastercard"
	case '3':
		return "Amex"
	case '6':
		return "Discover"
	}
	return "unknown brand"
}

func lastDigits(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
