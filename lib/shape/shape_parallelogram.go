package shape

import (
	"fmt"
	"io"

	"oss.terrastruct.com/shapes/lib/geo"
)

// Parallelogram is a Rectangle with a skew Angle in degrees.
type Parallelogram struct {
	Rectangle
	Angle float64
}

func NewParallelogram(bottomLeft *Point, width, height, angle float64) *Parallelogram {
	return newParallelogram(PARALLELOGRAM_TYPE, bottomLeft, width, height, angle)
}

func newParallelogram(shapeType string, bottomLeft *Point, width, height, angle float64) *Parallelogram {
	return &Parallelogram{
		Rectangle: *newRectangle(shapeType, bottomLeft, width, height),
		Angle:     angle,
	}
}

func (p *Parallelogram) Draw(w io.Writer) {
	p.describe(w, "Draw")
}

func (p *Parallelogram) Erase(w io.Writer) {
	p.describe(w, "Erase")
}

func (p *Parallelogram) describe(w io.Writer, verb string) {
	writeCorner(w, verb, PARALLELOGRAM_TYPE, &p.BottomLeft)
	fmt.Fprintf(w, " width: %s, height: %s, angle: %s\n",
		geo.FormatFloat(p.Width), geo.FormatFloat(p.Height), geo.FormatFloat(p.Angle))
}

// Rotate adds angle to the skew Angle and also turns the anchor about the
// origin. Both happen on every call.
func (p *Parallelogram) Rotate(angle float64) {
	p.Angle += angle
	p.BottomLeft.Rotate(angle)
}
