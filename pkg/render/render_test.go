package render_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
)

type swatch struct {
	*core.Base
	color    color.RGBA
	children []core.Widget
}

func newSwatch(c color.RGBA, box layout.BoundingBox, children ...core.Widget) *swatch {
	s := &swatch{Base: core.NewBase(), color: c, children: children}
	s.SetBoundingBox(box)
	return s
}

func (s *swatch) SizeConstraint() signal.Signal[layout.SizeConstraint] {
	return signal.Const(layout.Unconstrained())
}

func (s *swatch) Children() []core.Widget { return s.children }

func (s *swatch) Run(ctx context.Context, ec *event.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s *swatch) Prepare(rc *render.Context) []render.Drawable {
	return []render.Drawable{render.FillRect{Box: s.BoundingBox().Get(), Color: s.color}}
}

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func TestFrame_PaintOrder(t *testing.T) {
	hidden := newSwatch(blue, layout.BoundingBox{}, newSwatch(blue, layout.Box(0, 0, 5, 5)))
	a := newSwatch(green, layout.Box(0, 0, 5, 10))
	b := newSwatch(blue, layout.Box(5, 0, 5, 10))
	root := newSwatch(red, layout.Box(0, 0, 10, 10), a, hidden, b)

	rc := render.NewContext()
	var rec render.Recorder
	render.Paint(&rec, rc, render.Frame(root, rc))

	want := []layout.BoundingBox{root.BoundingBox().Get(), a.BoundingBox().Get(), b.BoundingBox().Get()}
	if len(rec.Ops) != len(want) {
		t.Fatalf("got %d ops %v, want %d", len(rec.Ops), rec.Ops, len(want))
	}
	for i, op := range rec.Ops {
		if op.Kind != render.OpFillRect || op.Box != want[i] {
			t.Errorf("op %d = %v, want fill %v", i, op, want[i])
		}
	}
	if rc.Frame != 1 {
		t.Errorf("frame counter = %d, want 1", rc.Frame)
	}
}

func TestFrame_ClearsDirty(t *testing.T) {
	child := newSwatch(green, layout.Box(0, 0, 1, 1))
	root := newSwatch(red, layout.Box(0, 0, 2, 2), child)
	if !root.IsDirty() || !child.IsDirty() {
		t.Fatal("widgets should start dirty")
	}
	render.Frame(root, render.NewContext())
	if root.IsDirty() || child.IsDirty() {
		t.Error("frame should clear dirty flags")
	}
}

func TestMeasureText(t *testing.T) {
	got := render.MeasureText(basicfont.Face7x13, "abc")
	if got != (layout.Size{Width: 21, Height: 13}) {
		t.Errorf("MeasureText = %v", got)
	}
	if got := render.MeasureText(basicfont.Face7x13, ""); got.Width != 0 {
		t.Errorf("empty width = %d", got.Width)
	}
}

func TestRasterPass_FillRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := render.NewRasterPass(img)
	p.Clear(color.White)
	p.FillRect(layout.Box(2, 2, 3, 3), red)
	// Clipped at the image edge.
	p.FillRect(layout.Box(8, 8, 10, 10), blue)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, red},
		{4, 4, red},
		{5, 5, color.RGBA{255, 255, 255, 255}},
		{1, 2, color.RGBA{255, 255, 255, 255}},
		{9, 9, blue},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterPass_TextStaysInBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	p := render.NewRasterPass(img)
	box := layout.Box(2, 2, 14, 13)
	p.Text(box, "HHHHHH", red, basicfont.Face7x13)

	inside, outside := 0, 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			if box.Contains(layout.Point{X: uint32(x), Y: uint32(y)}) {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 {
		t.Error("no glyph pixels drawn")
	}
	if outside != 0 {
		t.Errorf("%d pixels drawn outside the box", outside)
	}
}

func TestRasterPass_ImageScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, green)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	render.NewRasterPass(img).Image(layout.Box(2, 2, 4, 4), src)

	if got := img.RGBAAt(3, 3); got != green {
		t.Errorf("scaled pixel = %v, want %v", got, green)
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("pixel outside the box was drawn: %v", got)
	}
}
