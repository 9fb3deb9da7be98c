package shape

import (
	"fmt"
	"io"

	"oss.terrastruct.com/shapes/lib/geo"
)

// Rhombus is a Parallelogram built with equal sides. It holds a single
// Rectangle through its Parallelogram, so there is one anchor and one pair
// of sizes.
type Rhombus struct {
	Parallelogram
}

func NewRhombus(bottomLeft *Point, sideLength, angle float64) *Rhombus {
	return &Rhombus{
		Parallelogram: *newParallelogram(RHOMBUS_TYPE, bottomLeft, sideLength, sideLength, angle),
	}
}

func (r *Rhombus) SideLength() float64 {
	return r.Width
}

func (r *Rhombus) Draw(w io.Writer) {
	r.describe(w, "Draw")
}

func (r *Rhombus) Erase(w io.Writer) {
	r.describe(w, "Erase")
}

func (r *Rhombus) describe(w io.Writer, verb string) {
	writeCorner(w, verb, RHOMBUS_TYPE, &r.BottomLeft)
	fmt.Fprintf(w, " side length: %s, angle: %s\n", geo.FormatFloat(r.SideLength()), geo.FormatFloat(r.Angle))
}
