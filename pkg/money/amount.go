// Package money handles the opaque decimal strings used for transaction
// amounts and balance snapshots. Values are stored as text to avoid
// floating-point rounding; this package only parses and canonicalizes,
// arithmetic belongs to layers outside the core.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NormalizeAmount parses a decimal string and returns its canonical
// rendering, e.g. "0012.50" becomes "12.5". It rejects anything
// shopspring/decimal cannot parse.
func NormalizeAmount(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("amount cannot be empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.String(), nil
}

// IsValidAmount reports whether the string parses as a decimal.
func IsValidAmount(s string) bool {
	_, err := decimal.NewFromString(s)
	return s != "" && err == nil
}
