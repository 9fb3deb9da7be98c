package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// ApproxEquals compares both coordinates with PrecisionCompare and tolerance e.
func (p1 *Point) ApproxEquals(p2 *Point, e float64) bool {
	if p1 == nil || p2 == nil {
		return p1 == p2
	}
	return PrecisionCompare(p1.X, p2.X, e) == 0 && PrecisionCompare(p1.Y, p2.Y, e) == 0
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Translate moves the point in place by (dx, dy).
func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Rotate turns the point in place about the origin (0, 0), not about itself.
// angle is in degrees, counter-clockwise.
func (p *Point) Rotate(angle float64) {
	rad := DegreesToRadians(angle)
	sin, cos := math.Sincos(rad)
	x := p.X*cos - p.Y*sin
	y := p.X*sin + p.Y*cos
	p.X = x
	p.Y = y
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%s, %s)", FormatFloat(p.X), FormatFloat(p.Y))
}
