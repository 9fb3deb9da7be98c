package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	testCases := []struct {
		in  float64
		exp string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{2, "2"},
		{0.5, "0.5"},
		{30, "30"},
		{1234567, "1.23457e+06"},
		{0.00001, "1e-05"},
		{1.1102230246251565e-16, "1.11022e-16"},
		{math.Sqrt2, "1.41421"},
		{-4.75, "-4.75"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.exp, FormatFloat(tc.in))
	}
}

func TestPrecisionCompare(t *testing.T) {
	assert.Equal(t, 0, PrecisionCompare(1, 1.0005, 0.001))
	assert.Equal(t, -1, PrecisionCompare(1, 2, 0.001))
	assert.Equal(t, 1, PrecisionCompare(2, 1, 0.001))
}

func TestDegreesToRadians(t *testing.T) {
	assert.Equal(t, 0.0, DegreesToRadians(0))
	assert.InDelta(t, math.Pi, DegreesToRadians(180), 1e-15)
	assert.InDelta(t, math.Pi/4, DegreesToRadians(45), 1e-15)
}
