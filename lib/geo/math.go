package geo

import (
	"math"
	"strconv"
)

// FloatPrecision is the number of significant digits FormatFloat keeps.
// It matches the default precision of a C++ ostream, which is what the
// classroom transcripts were produced with.
const FloatPrecision = 6

// compare a and b and consider them equal if
// difference is less than precision e (e.g. e=0.001)
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

func DegreesToRadians(angle float64) float64 {
	return angle * math.Pi / 180
}

// FormatFloat prints v in %g form with FloatPrecision significant digits.
// Trailing zeros are dropped, so 2 prints as "2" and 0.5 as "0.5".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', FloatPrecision, 64)
}
