package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/johnsmera/checkout/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Pix(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	details, expiresAt := Generate(model.PaymentMethodPix, nil, now)

	require.NotNil(t, details.Pix)
	assert.Nil(t, details.CreditCard)
	assert.Nil(t, details.Boleto)

	// content is random, shape is not
	assert.Len(t, details.Pix.Code, 32)
	for _, r := range details.Pix.Code {
		assert.Contains(t, pixCodeAlphabet, string(r))
	}
	assert.True(t, strings.HasPrefix(details.Pix.QRCode, "data:image/svg+xml;base64,"))

	require.NotNil(t, expiresAt)
	assert.Equal(t, now.Add(30*time.Minute), *expiresAt)
}

func TestGenerate_Boleto(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	details, expiresAt := Generate(model.PaymentMethodBoleto, nil, now)

	require.NotNil(t, details.Boleto)
	assert.Nil(t, details.Pix)
	assert.Nil(t, details.CreditCard)

	assert.Len(t, details.Boleto.BarCode, 47)
	for _, r := range details.Boleto.BarCode {
		assert.True(t, r >= '0' && r <= '9')
	}

	require.NotNil(t, expiresAt)
	assert.Equal(t, now.Add(3*24*time.Hour), *expiresAt)
	assert.Equal(t, *expiresAt, details.Boleto.DueDate)
}

func TestGenerate_CreditCard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	card := &model.CreditCardData{
		CardNumber: "4111 1111 1111 1111",
		CardName:   "JOHN DOE",
		ExpiryDate: "12/28",
		CVV:        "123",
	}

	details, expiresAt := Generate(model.PaymentMethodCreditCard, card, now)

	require.NotNil(t, details.CreditCard)
	assert.Nil(t, details.Pix)
	assert.Nil(t, details.Boleto)

	assert.Equal(t, "1111", details.CreditCard.LastDigits)
	assert.Equal(t, "Visa", details.CreditCard.Brand)

	// credit card charges never expire
	assert.Nil(t, expiresAt)
}

func TestDetectBrand(t *testing.T) {
	cases := []struct {
		number string
		brand  string
	}{
		{"4111111111111111", "Visa"},
		{"5500000000000004", "Mastercard"},
		{"340000000000009", "Amex"},
		{"6011000000000004", "Discover"},
		{"9999999999999999", "unknown brand"},
		{"", "unknown brand"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.brand, DetectBrand(tc.number), "number %q", tc.number)
	}
}

func TestPixCode_Randomized(t *testing.T) {
	// two draws colliding would mean the generator is not random at all
	assert.NotEqual(t, PixCode(), PixCode())
}
