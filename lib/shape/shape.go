package shape

import "io"

const (
	POINT_TYPE         = "Point"
	LINE_TYPE          = "Line"
	RECTANGLE_TYPE     = "Rectangle"
	SQUARE_TYPE        = "Square"
	PARALLELOGRAM_TYPE = "Parallelogram"
	RHOMBUS_TYPE       = "Rhombus"
)

// Shape is the capability set every figure shares.
//
// Draw and Erase describe the shape as text on w. Write errors are not
// reported; render into a bytes.Buffer and write the result in one go.
type Shape interface {
	Is(shape string) bool
	GetType() string

	Draw(w io.Writer)
	Erase(w io.Writer)

	Move(dx, dy float64)
	// each shape decides what rotating means for it, angle is in degrees
	Rotate(angle float64)
}

type baseShape struct {
	Type string
}

func (s baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s baseShape) GetType() string {
	return s.Type
}
