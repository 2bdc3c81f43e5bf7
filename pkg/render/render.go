package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/layout"
)

// Context is the per-frame state shared by Prepare and Draw.
type Context struct {
	// Face is used for text measurement and drawing.
	Face font.Face
	// Frame counts completed frames.
	Frame uint64
}

// NewContext returns a Context using the built-in 7x13 bitmap face.
func NewContext() *Context {
	return &Context{Face: basicfont.Face7x13}
}

// Pass executes drawing operations on a backend.
type Pass interface {
	FillRect(box layout.BoundingBox, c color.Color)
	// Text draws s with its top-left corner at box.Pos, clipped to box.
	Text(box layout.BoundingBox, s string, c color.Color, face font.Face)
	// Image scales img to fill box.
	Image(box layout.BoundingBox, img image.Image)
}

// Drawable is a prepared drawing operation.
type Drawable interface {
	Draw(p Pass, rc *Context)
}

// Preparer is implemented by widgets that paint.
type Preparer interface {
	Prepare(rc *Context) []Drawable
}

type dirtyTracker interface {
	TakeDirty() bool
}

// FillRect fills Box with Color.
type FillRect struct {
	Box   layout.BoundingBox
	Color color.Color
}

func (d FillRect) Draw(p Pass, rc *Context) { p.FillRect(d.Box, d.Color) }

// TextRun draws a single line of text. A nil Face draws with the
// Context's face.
type TextRun struct {
	Box   layout.BoundingBox
	Text  string
	Color color.Color
	Face  font.Face
}

func (d TextRun) Draw(p Pass, rc *Context) {
	face := d.Face
	if face == nil {
		face = rc.Face
	}
	p.Text(d.Box, d.Text, d.Color, face)
}

// ImageBlit scales Image into Box.
type ImageBlit struct {
	Box   layout.BoundingBox
	Image image.Image
}

func (d ImageBlit) Draw(p Pass, rc *Context) { p.Image(d.Box, d.Image) }

// Frame walks root in paint order and returns the drawables of every
// visible widget. Each visited widget's dirty flag is cleared. Subtrees
// with an empty bounding box are skipped entirely.
func Frame(root core.Widget, rc *Context) []Drawable {
	var out []Drawable
	core.Walk(root, func(w core.Widget, _ int) bool {
		if d, ok := w.(dirtyTracker); ok {
			d.TakeDirty()
		}
		box := w.BoundingBox().Get()
		if box.Size.Width == 0 || box.Size.Height == 0 {
			return false
		}
		if p, ok := w.(Preparer); ok {
			out = append(out, p.Prepare(rc)...)
		}
		return true
	})
	rc.Frame++
	return out
}

// Paint executes drawables on p in order.
func Paint(p Pass, rc *Context, drawables []Drawable) {
	for _, d := range drawables {
		d.Draw(p, rc)
	}
}

// MeasureText returns the size of a single line of s in face.
func MeasureText(face font.Face, s string) layout.Size {
	m := face.Metrics()
	return layout.Size{
		Width:  uint32(font.MeasureString(face, s).Ceil()),
		Height: uint32(m.Height.Ceil()),
	}
}
