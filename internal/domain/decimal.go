package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Decimal fields (price, rating, weight) travel as canonical strings and are
// stored in NUMERIC columns; the application never does float arithmetic on
// them.

var errNotADecimal = errors.New("not a decimal number")

// parseDecimal validates a decimal string like "20" or "20.00" and returns
// its numeric value for range checks only.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errNotADecimal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotADecimal
	}
	return v, nil
}
