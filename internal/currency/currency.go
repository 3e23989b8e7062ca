// Package currency formats and parses rupee amounts.
package currency

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the Indian rupee sign.
const DefaultSymbol = "₹"

var (
	ErrEmptyAmount     = errors.New("amount is required")
	ErrMalformedAmount = errors.New("amount must be a decimal number")
	ErrTooManyDecimals = errors.New("amount cannot have more than 2 decimal places")
)

// Formatter renders amounts with Indian digit grouping: the last three
// digits form one group and every group above it has two digits, so one
// lakh prints as 1,00,000.
type Formatter struct {
	Symbol string
}

// NewFormatter returns a Formatter using symbol, or DefaultSymbol when empty.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

// Format returns amount with the currency symbol, grouping and exactly two
// decimal places. A minus sign goes after the symbol, as in ₹-15,000.00.
func (f Formatter) Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if unsigned, ok := strings.CutPrefix(fixed, "-"); ok {
		sign = "-"
		fixed = unsigned
	}

	whole, fraction, _ := strings.Cut(fixed, ".")
	return f.Symbol + sign + groupIndian(whole) + "." + fraction
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var b strings.Builder
	first := len(head) % 2
	if first > 0 {
		b.WriteString(head[:first])
	}
	for i := first; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// ParseAmount reads a user supplied amount such as "5000" or "1250.50".
// Grouping commas and a leading rupee sign are tolerated. Sign checks are
// left to the ledger.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, DefaultSymbol)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return decimal.Zero, ErrTooManyDecimals
	}

	return amount, nil
}
