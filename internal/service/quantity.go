package service

import (
	"math"
	"strconv"
	"strings"
)

// MaxQuantity caps a single item quantity.
const MaxQuantity = 1_000_000

// SanitizeQuantity floors q and clamps it to [0, MaxQuantity]. NaN becomes 0.
func SanitizeQuantity(q float64) int {
	if math.IsNaN(q) || q <= 0 {
		return 0
	}
	if q >= MaxQuantity {
		return MaxQuantity
	}
	return int(math.Floor(q))
}

// ParseQuantityInput turns free-text quantity input into a quantity.
// Numeric text ("3", "2.9", "-4") is sanitized like SanitizeQuantity.
// Anything else keeps only its digits ("12 pzas" -> 12), and text without
// digits is 0.
func ParseQuantityInput(input string) int {
	trimmed := strings.TrimSpace(input)
	if q, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(q, 0) && !math.IsNaN(q) {
		return SanitizeQuantity(q)
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, trimmed)
	if digits == "" {
		return 0
	}

	q, err := strconv.Atoi(digits)
	if err != nil || q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
