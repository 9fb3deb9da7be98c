package shape

import (
	"fmt"
	"io"

	"oss.terrastruct.com/shapes/lib/geo"
)

type Point struct {
	baseShape
	geo.Point
}

func NewPoint(x, y float64) *Point {
	return &Point{
		baseShape: baseShape{Type: POINT_TYPE},
		Point:     geo.Point{X: x, Y: y},
	}
}

func (p *Point) Draw(w io.Writer) {
	fmt.Fprintf(w, "Draw Point at %s\n", p.ToString())
}

func (p *Point) Erase(w io.Writer) {
	fmt.Fprintf(w, "Erase Point at %s\n", p.ToString())
}

// Info is the description other shapes use for the points they hold.
func (p *Point) Info(w io.Writer) {
	fmt.Fprintf(w, "Point at %s\n", p.ToString())
}

func (p *Point) Move(dx, dy float64) {
	p.Translate(dx, dy)
}

// Rotate turns the point about the origin, not about its own position.
func (p *Point) Rotate(angle float64) {
	p.Point.Rotate(angle)
}
