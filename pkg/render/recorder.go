package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/go-drift/weave/pkg/layout"
)

// OpKind identifies a recorded operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpText
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill"
	case OpText:
		return "text"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing operation.
type Op struct {
	Kind  OpKind
	Box   layout.BoundingBox
	Text  string
	Color color.Color
	Face  font.Face
	Image image.Image
}

func (o Op) String() string {
	switch o.Kind {
	case OpText:
		return fmt.Sprintf("%s %v %q", o.Kind, o.Box, o.Text)
	default:
		return fmt.Sprintf("%s %v", o.Kind, o.Box)
	}
}

// Recorder is a Pass that records operations instead of drawing them.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(box layout.BoundingBox, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Box: box, Color: c})
}

func (r *Recorder) Text(box layout.BoundingBox, s string, c color.Color, face font.Face) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Box: box, Text: s, Color: c, Face: face})
}

func (r *Recorder) Image(box layout.BoundingBox, img image.Image) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Box: box, Image: img})
}

// Reset drops recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
