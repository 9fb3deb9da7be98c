package shape

import (
	"fmt"
	"io"

	"oss.terrastruct.com/shapes/lib/geo"
)

// Rectangle is anchored at its bottom-left corner. Width and Height are not
// validated, negative or NaN sizes are kept as given.
type Rectangle struct {
	baseShape
	BottomLeft Point
	Width      float64
	Height     float64
}

func NewRectangle(bottomLeft *Point, width, height float64) *Rectangle {
	return newRectangle(RECTANGLE_TYPE, bottomLeft, width, height)
}

func newRectangle(shapeType string, bottomLeft *Point, width, height float64) *Rectangle {
	return &Rectangle{
		baseShape:  baseShape{Type: shapeType},
		BottomLeft: *bottomLeft,
		Width:      width,
		Height:     height,
	}
}

func (r *Rectangle) Draw(w io.Writer) {
	r.describe(w, "Draw")
}

func (r *Rectangle) Erase(w io.Writer) {
	r.describe(w, "Erase")
}

func (r *Rectangle) describe(w io.Writer, verb string) {
	writeCorner(w, verb, RECTANGLE_TYPE, &r.BottomLeft)
	fmt.Fprintf(w, " width: %s, height: %s\n", geo.FormatFloat(r.Width), geo.FormatFloat(r.Height))
}

func (r *Rectangle) Move(dx, dy float64) {
	r.BottomLeft.Move(dx, dy)
}

// Rotate only turns the bottom-left anchor about the origin. Width and
// Height keep their axis-aligned meaning, the outline is not reoriented.
func (r *Rectangle) Rotate(angle float64) {
	r.BottomLeft.Rotate(angle)
}

// writeCorner writes the common "<verb> <name> with bottom-left corner at
// Point at (x, y)" prefix, which ends in a newline.
func writeCorner(w io.Writer, verb, name string, corner *Point) {
	fmt.Fprintf(w, "%s %s with bottom-left corner at ", verb, name)
	corner.Info(w)
}
