package utils

import (
	"fmt"
	"strconv"
)

// Human renders a count in K/M/G steps, e.g. 102400 becomes "100K".
// Up to ten units of a scale the value keeps two significant digits,
// beyond that it is truncated to whole units.
func Human(n uint64) string {
	switch {
	case n <= 1<<10:
		return strconv.FormatUint(n, 10)
	case n <= 10<<10:
		return fmt.Sprintf("%.2gK", float64(n)/(1<<10))
	case n <= 1<<20:
		return strconv.FormatUint(n>>10, 10) + "K"
	case n <= 10<<20:
		return fmt.Sprintf("%.2gM", float64(n)/(1<<20))
	case n <= 1<<30:
		return strconv.FormatUint(n>>20, 10) + "M"
	default:
		return fmt.Sprintf("%gG", float64(n)/(1<<30))
	}
}
