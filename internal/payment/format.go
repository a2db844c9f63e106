package payment

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nonDigit    = regexp.MustCompile(`\D`)
	expiryShape = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

// FormatPixCode groups a PIX code in blocks of 4 for display.
func FormatPixCode(code string) string {
	return strings.Join(chunk(code, 4), " ")
}

// FormatBoletoBarCode renders the 47-digit barcode in the usual
// XXXXX.XXXXX XXXXX.XXXXXX XXXXX.XXXXXX X XXXXXXXXXXXXXX layout.
// Anything that is not 47 digits long is returned untouched.
func FormatBoletoBarCode(barCode string) string {
	if len(barCode) != 47 {
		return barCode
	}

	return barCode[0:5] + "." + barCode[5:10] +
		" " + barCode[10:15] + "." + barCode[15:21] +
		" " + barCode[21:26] + "." + barCode[26:32] +
		" " + barCode[32:33] +
		" " + barCode[33:]
}

// MaskCardNumber reformats raw input into "#### #### #### ####",
// capped at 16 digits.
func MaskCardNumber(value string) string {
	digits := nonDigit.ReplaceAllString(value, "")
	masked := strings.Join(chunk(digits, 4), " ")
	if len(masked) > 19 {
		masked = masked[:19]
	}
	return masked
}

// MaskExpiryDate reformats raw input into "MM/YY".
func MaskExpiryDate(value string) string {
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// MaskCVV strips non-digits and caps at 4.
func MaskCVV(value string) string {
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// ValidateCardNumber accepts 13 to 19 digits, ignoring spaces.
func ValidateCardNumber(cardNumber string) bool {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	return len(cleaned) >= 13 && len(cleaned) <= 19
}

// ValidateExpiryDate accepts MM/YY dates from now (month precision) onwards.
func ValidateExpiryDate(expiryDate string, now time.Time) bool {
	if !expiryShape.MatchString(expiryDate) {
		return false
	}

	month, _ := strconv.Atoi(expiryDate[:2])
	year, _ := strconv.Atoi(expiryDate[3:])
	if month < 1 || month > 12 {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return false
	}
	return true
}

// ValidateCVV accepts 3 or 4 characters.
func ValidateCVV(cvv string) bool {
	return len(cvv) >= 3 && len(cvv) <= 4
}

func chunk(s string, size int) []string {
	var parts []string
	for len(s) > size {
		parts = append(parts, s[:size])
		s = s[size:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
