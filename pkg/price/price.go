package price

import (
	"github.com/shopspring/decimal"
)

// Price represents a display-precision price value. The simulation engine
// works in float64 by contract; Price exists for the report layer, where
// values are rounded for humans rather than for arithmetic.
type Price struct {
	decimal.Decimal
}

// New creates a Price from a float64.
func New(value float64) Price {
	return Price{decimal.NewFromFloat(value)}
}

// FromString parses a Price from a string.
func FromString(value string) (Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, err
	}
	return Price{d}, nil
}

// Round rounds to cents using banker's rounding.
func (p Price) Round() Price {
	return Price{p.Decimal.RoundBank(2)}
}

// GreaterThan checks if this price is greater than another
func (p Price) GreaterThan(other Price) bool {
	return p.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this price is less than another
func (p Price) LessThan(other Price) bool {
	return p.Decimal.LessThan(other.Decimal)
}

// Equal checks if this price equals another
func (p Price) Equal(other Price) bool {
	return p.Decimal.Equal(other.Decimal)
}

// String returns the value with two fixed decimals.
func (p Price) String() string {
	return p.Decimal.StringFixed(2)
}

// Format formats the price with a currency prefix.
func (p Price) Format() string {
	return "$" + p.String()
}
