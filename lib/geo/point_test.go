package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestPointRotateZero(t *testing.T) {
	for _, p := range []*Point{{0, 0}, {1, 1}, {-3.5, 2.25}, {1e6, -1e-3}} {
		got := p.Copy()
		got.Rotate(0)
		assert.Truef(t, got.ApproxEquals(p, tolerance), "Expected %v to be unchanged, got %v", p.ToString(), got.ToString())
	}
}

func TestPointRotateFullTurn(t *testing.T) {
	for _, p := range []*Point{{0, 0}, {1, 1}, {-3.5, 2.25}, {100, -40}} {
		got := p.Copy()
		got.Rotate(360)
		assert.Truef(t, got.ApproxEquals(p, tolerance), "Expected %v after a full turn, got %v", p.ToString(), got.ToString())
	}
}

func TestPointRotateAboutOrigin(t *testing.T) {
	p := NewPoint(1, 0)
	p.Rotate(90)
	assert.True(t, p.ApproxEquals(NewPoint(0, 1), tolerance))

	// The origin is the pivot, so a point away from it travels.
	p = NewPoint(2, 2)
	p.Rotate(180)
	assert.True(t, p.ApproxEquals(NewPoint(-2, -2), tolerance))

	p = NewPoint(1, 1)
	p.Rotate(45)
	assert.InDelta(t, 0, p.X, tolerance)
	assert.InDelta(t, math.Sqrt2, p.Y, tolerance)

	p = NewPoint(1, 0)
	p.Rotate(-90)
	assert.True(t, p.ApproxEquals(NewPoint(0, -1), tolerance))
}

func TestPointTranslateRoundTrip(t *testing.T) {
	p := NewPoint(1.5, -2)
	p.Translate(3.25, 7)
	assert.Equal(t, Point{4.75, 5}, *p)
	p.Translate(-3.25, -7)
	assert.Equal(t, Point{1.5, -2}, *p)
}

func TestPointNaNPropagates(t *testing.T) {
	p := NewPoint(1, 1)
	p.Translate(math.NaN(), 0)
	assert.True(t, math.IsNaN(p.X))
	assert.Equal(t, 1.0, p.Y)

	p = NewPoint(1, 1)
	p.Rotate(math.Inf(1))
	assert.True(t, math.IsNaN(p.X))
	assert.True(t, math.IsNaN(p.Y))
}

func TestPointEquals(t *testing.T) {
	var nilPoint *Point
	assert.True(t, nilPoint.Equals(nil))
	assert.False(t, NewPoint(0, 0).Equals(nil))
	assert.True(t, NewPoint(1, 2).Equals(NewPoint(1, 2)))
	assert.False(t, NewPoint(1, 2).Equals(NewPoint(2, 1)))

	assert.True(t, NewPoint(1, 2).ApproxEquals(NewPoint(1.0001, 2), 0.001))
	assert.False(t, NewPoint(1, 2).ApproxEquals(NewPoint(1.01, 2), 0.001))
	assert.False(t, NewPoint(1, 2).ApproxEquals(nil, 0.001))
}

func TestPointToString(t *testing.T) {
	var nilPoint *Point
	assert.Equal(t, "", nilPoint.ToString())
	assert.Equal(t, "(0, 0)", NewPoint(0, 0).ToString())
	assert.Equal(t, "(1.5, -2)", NewPoint(1.5, -2).ToString())
	assert.Equal(t, "(1.41421, 2.82843)", NewPoint(math.Sqrt2, 2*math.Sqrt2).ToString())
}
