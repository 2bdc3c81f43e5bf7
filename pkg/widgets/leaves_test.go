package widgets_test

import (
	"image"
	"testing"
	"time"

	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
	weavetest "github.com/go-drift/weave/pkg/testing"
	"github.com/go-drift/weave/pkg/widgets"
)

func TestSlab_PreparesFill(t *testing.T) {
	color := signal.NewCell(red)
	s := widgets.NewSlab().WithColorSignal(color).MustBuild()
	s.SetBoundingBox(layout.Box(1, 2, 3, 4))

	rc := render.NewContext()
	got := s.Prepare(rc)
	want := render.FillRect{Box: layout.Box(1, 2, 3, 4), Color: red}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Prepare = %v, want %v", got, want)
	}
	color.Set(blue)
	if got := s.Prepare(rc)[0].(render.FillRect).Color; got != blue {
		t.Errorf("color = %v, want blue", got)
	}
}

func TestSlab_RedrawsOnColorChange(t *testing.T) {
	tester := weavetest.NewTesterWithT(t)
	color := signal.NewCell(red)
	s := widgets.NewSlab().WithColorSignal(color).MustBuild()
	if err := tester.PumpWidget(s); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	tester.Render()
	if s.IsDirty() {
		t.Fatal("render should clear the dirty flag")
	}

	select {
	case <-tester.Context().Redraws():
	default:
	}

	color.Set(green)
	select {
	case <-tester.Context().Redraws():
	case <-time.After(2 * time.Second):
		t.Fatal("color change should signal a redraw")
	}
	if err := tester.PumpUntil(s.IsDirty); err != nil {
		t.Fatal("color change should mark the slab dirty")
	}
}

func TestLabel_MeasuresText(t *testing.T) {
	text := signal.NewCell("abc")
	l := widgets.NewLabel().WithTextSignal(text).MustBuild()

	if got := l.SizeConstraint().Get(); got != layout.MinSize(21, 13) {
		t.Errorf("constraint = %v, want MinSize(21,13)", got)
	}
	text.Set("abcdef")
	if got := l.SizeConstraint().Get(); got != layout.MinSize(42, 13) {
		t.Errorf("constraint = %v, want MinSize(42,13)", got)
	}
}

func TestLabel_ReservesSpaceInBox(t *testing.T) {
	tester := weavetest.NewTesterWithT(t)
	tester.SetSize(layout.Size{Width: 100, Height: 20})

	text := signal.NewCell("abcdefgh")
	label := widgets.NewLabel().WithTextSignal(text).MustBuild()
	rest := slab(layout.Unconstrained())
	if err := tester.PumpWidget(widgets.NewBox().WithChildren(label, rest).MustBuild()); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	// 56 reserved for the text, the 44 left over split evenly.
	waitBox(t, tester, label, layout.Box(0, 0, 78, 20))
	waitBox(t, tester, rest, layout.Box(78, 0, 22, 20))

	text.Set("a")
	waitBox(t, tester, label, layout.Box(0, 0, 53, 20))

	rec := tester.Render()
	var found bool
	for _, op := range rec.Ops {
		if op.Kind == render.OpText && op.Text == "a" && op.Box == label.BoundingBox().Get() {
			found = true
		}
	}
	if !found {
		t.Errorf("no text op for the label in %v", rec.Ops)
	}
}

func TestImage_ConstraintFromBounds(t *testing.T) {
	src := signal.NewCellFunc[image.Image](image.NewRGBA(image.Rect(0, 0, 30, 10)), nil)
	img := widgets.NewImage().WithImageSignal(src).MustBuild()

	if got := img.SizeConstraint().Get(); got != layout.MaxSize(30, 10) {
		t.Errorf("constraint = %v", got)
	}
	src.Set(image.NewRGBA(image.Rect(0, 0, 4, 8)))
	if got := img.SizeConstraint().Get(); got != layout.MaxSize(4, 8) {
		t.Errorf("constraint after change = %v", got)
	}

	img.SetBoundingBox(layout.Box(0, 0, 4, 8))
	ds := img.Prepare(render.NewContext())
	if len(ds) != 1 {
		t.Fatalf("Prepare returned %d drawables", len(ds))
	}
	if blit, ok := ds[0].(render.ImageBlit); !ok || blit.Image != src.Get() {
		t.Errorf("drawable = %#v", ds[0])
	}

	src.Set(nil)
	if len(img.Prepare(render.NewContext())) != 0 {
		t.Error("nil image should draw nothing")
	}
}

func TestImage_CenteredInContainer(t *testing.T) {
	tester := weavetest.NewTesterWithT(t)
	tester.SetSize(layout.Size{Width: 100, Height: 100})

	img := widgets.NewImage().WithImage(image.NewRGBA(image.Rect(0, 0, 30, 10))).MustBuild()
	if err := tester.PumpWidget(widgets.NewContainer().WithChild(img).MustBuild()); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	waitBox(t, tester, img, layout.Box(35, 45, 30, 10))
}
