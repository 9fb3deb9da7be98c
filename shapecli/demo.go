package shapecli

import (
	"context"
	"io"

	"cdr.dev/slog"

	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/shape"
)

type step struct {
	op     string
	shape  shape.Shape
	fields []slog.Field
	do     func(io.Writer)
}

type demo struct {
	shapes []shape.Shape
	steps  []step
}

// newDemo lays out the fixed classroom scenario. Every shape is built from
// the same two points and each keeps its own copy of them.
func newDemo(erase bool) *demo {
	p1 := shape.NewPoint(0, 0)
	p2 := shape.NewPoint(1, 1)

	line := shape.NewLine(p1, p2)
	rect := shape.NewRectangle(p1, 4, 2)
	square := shape.NewSquare(p1, 2)
	para := shape.NewParallelogram(p1, 4, 2, 30)
	rhombus := shape.NewRhombus(p1, 2, 45)

	d := &demo{
		shapes: []shape.Shape{line, rect, square, para, rhombus},
	}

	d.draw(line)
	d.move(line, 1, 1)
	d.draw(line)
	d.rotate(line, 45)
	d.draw(line)

	d.draw(rect)
	d.move(rect, 1, 1)
	d.draw(rect)

	d.draw(square)
	d.move(square, 2, 2)
	d.draw(square)

	d.draw(para)
	d.move(para, 1, 1)
	d.draw(para)

	d.draw(rhombus)
	d.move(rhombus, 1, 1)
	d.draw(rhombus)

	if erase {
		for _, s := range d.shapes {
			d.erase(s)
		}
	}
	return d
}

func (d *demo) draw(s shape.Shape) {
	d.steps = append(d.steps, step{op: "draw", shape: s, do: s.Draw})
}

func (d *demo) erase(s shape.Shape) {
	d.steps = append(d.steps, step{op: "erase", shape: s, do: s.Erase})
}

func (d *demo) move(s shape.Shape, dx, dy float64) {
	d.steps = append(d.steps, step{
		op:     "move",
		shape:  s,
		fields: []slog.Field{slog.F("dx", dx), slog.F("dy", dy)},
		do: func(io.Writer) {
			s.Move(dx, dy)
		},
	})
}

func (d *demo) rotate(s shape.Shape, angle float64) {
	d.steps = append(d.steps, step{
		op:     "rotate",
		shape:  s,
		fields: []slog.Field{slog.F("angle", angle)},
		do: func(io.Writer) {
			s.Rotate(angle)
		},
	})
}

func (d *demo) run(ctx context.Context, w io.Writer) error {
	ctx = log.Named(ctx, "demo")
	for _, st := range d.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := append([]slog.Field{slog.F("shape", st.shape.GetType())}, st.fields...)
		log.Debug(ctx, st.op, fields...)
		st.do(w)
	}
	return nil
}
