package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePriceCents parses a decimal price string ("10", "9.5", "12.00") into
// cents. More than two decimals, exponents, negatives and non-numeric input
// are refused, so a price that validates always sums into revenue later.
func ParsePriceCents(price string) (int64, error) {
	price = strings.TrimSpace(price)
	whole, frac, _ := strings.Cut(price, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("prix invalide %q", price)
	}
	cents := int64(0)
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("prix invalide %q", price)
		}
		c, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || c < 0 {
			return 0, fmt.Errorf("prix invalide %q", price)
		}
		if len(frac) == 1 {
			c *= 10
		}
		cents = c
	}
	return units*100 + cents, nil
}
