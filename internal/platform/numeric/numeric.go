package numeric

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Round2 rounds the exact binary value of v to two decimal places, ties to
// even. 2.675 is stored as 2.67499... and so becomes 2.67.
func Round2(v float64) float64 {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', 2, 64))
	if err != nil {
		return v
	}
	return d.InexactFloat64()
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
