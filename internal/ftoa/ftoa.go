// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package ftoa formats float32 values in decimal
// notation with a mandatory fractional part.
package ftoa

import (
	"math"
	"strconv"
	"strings"
)

// Format returns the shortest decimal representation
// of f that round-trips to the same float32.
// It never uses exponent notation and always includes
// a fractional part (e.g., "1.0", "-0.0", "0.0001").
// Infinities are formatted as "inf" and "-inf", and
// NaN as "NaN".
func Format(f float32) string {
	switch {
	case f != f:
		return "NaN"
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
