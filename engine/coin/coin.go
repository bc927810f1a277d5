// Package coin implements the fixed-point currency used for balances and
// prices. Amounts are stored in hundredths so fractional sale prices stay exact.
package coin

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a currency value in hundredths of a coin.
type Amount int64

// Whole returns an Amount of n whole coins.
func Whole(n int) Amount {
	return Amount(n) * 100
}

// FromFloat converts a decimal coin value, rounding to the nearest hundredth.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Float returns the amount as a decimal coin value.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// Scale multiplies the amount by rate, rounding to the nearest hundredth.
func (a Amount) Scale(rate float64) Amount {
	return Amount(math.Round(float64(a) * rate))
}

// String formats the amount without trailing zeros: 20, 20.5, 0.25.
func (a Amount) String() string {
	s := strconv.FormatFloat(a.Float(), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
