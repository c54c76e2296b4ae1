package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds an amount to two decimal places, the precision every
// displayed money value carries. Totals are summed unrounded and passed
// through Round2 once at the end, so recomputation never drifts.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ParseAmount coerces grid cell text into an amount. Empty or
// non-numeric input becomes 0. Cells are never rejected; leniency here
// is deliberate so a half-filled grid still aggregates.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount coerces grid cell text into a count. Empty, non-numeric or
// negative input becomes 0. Raw counts are persisted as entered; only
// division sites apply the DivisorCount floor.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// DivisorCount floors a participant count at 1 for per-person division.
func DivisorCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
