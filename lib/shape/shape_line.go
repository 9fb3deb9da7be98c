package shape

import (
	"fmt"
	"io"
)

type Line struct {
	baseShape
	Start Point
	End   Point
}

// NewLine copies start and end; later changes to either argument do not
// reach the line.
func NewLine(start, end *Point) *Line {
	return &Line{
		baseShape: baseShape{Type: LINE_TYPE},
		Start:     *start,
		End:       *end,
	}
}

func (l *Line) Draw(w io.Writer) {
	l.describe(w, "Draw")
}

func (l *Line) Erase(w io.Writer) {
	l.describe(w, "Erase")
}

func (l *Line) describe(w io.Writer, verb string) {
	fmt.Fprintf(w, "%s Line from ", verb)
	l.Start.Info(w)
	fmt.Fprint(w, " to ")
	l.End.Info(w)
}

func (l *Line) Move(dx, dy float64) {
	l.Start.Move(dx, dy)
	l.End.Move(dx, dy)
}

// Rotate turns both endpoints about the origin independently. The line is
// not pivoted around its own midpoint.
func (l *Line) Rotate(angle float64) {
	l.Start.Rotate(angle)
	l.End.Rotate(angle)
}
