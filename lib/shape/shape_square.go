package shape

import (
	"fmt"
	"io"

	"oss.terrastruct.com/shapes/lib/geo"
)

// Square is a Rectangle built with equal sides. Nothing keeps the sides
// equal afterwards.
type Square struct {
	Rectangle
}

func NewSquare(bottomLeft *Point, sideLength float64) *Square {
	return &Square{
		Rectangle: *newRectangle(SQUARE_TYPE, bottomLeft, sideLength, sideLength),
	}
}

func (s *Square) SideLength() float64 {
	return s.Width
}

func (s *Square) Draw(w io.Writer) {
	s.describe(w, "Draw")
}

func (s *Square) Erase(w io.Writer) {
	s.describe(w, "Erase")
}

func (s *Square) describe(w io.Writer, verb string) {
	writeCorner(w, verb, SQUARE_TYPE, &s.BottomLeft)
	fmt.Fprintf(w, " side length: %s\n", geo.FormatFloat(s.SideLength()))
}
