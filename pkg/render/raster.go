package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/weave/pkg/layout"
)

// RasterPass draws into an RGBA image. It is a reference backend: no
// antialiasing beyond what the face provides and no shaping.
type RasterPass struct {
	dst *image.RGBA
}

// NewRasterPass returns a pass drawing into dst.
func NewRasterPass(dst *image.RGBA) *RasterPass {
	return &RasterPass{dst: dst}
}

// Clear fills the whole destination with c.
func (r *RasterPass) Clear(c color.Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *RasterPass) clip(box layout.BoundingBox) (*image.RGBA, bool) {
	rect := image.Rect(int(box.Pos.X), int(box.Pos.Y), int(box.Right()), int(box.Bottom()))
	rect = rect.Intersect(r.dst.Bounds())
	if rect.Empty() {
		return nil, false
	}
	return r.dst.SubImage(rect).(*image.RGBA), true
}

func (r *RasterPass) FillRect(box layout.BoundingBox, c color.Color) {
	dst, ok := r.clip(box)
	if !ok {
		return
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *RasterPass) Text(box layout.BoundingBox, s string, c color.Color, face font.Face) {
	dst, ok := r.clip(box)
	if !ok || s == "" {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(int(box.Pos.X), int(box.Pos.Y)+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (r *RasterPass) Image(box layout.BoundingBox, img image.Image) {
	if img == nil {
		return
	}
	if _, ok := r.clip(box); !ok {
		return
	}
	rect := image.Rect(int(box.Pos.X), int(box.Pos.Y), int(box.Right()), int(box.Bottom()))
	draw.ApproxBiLinear.Scale(r.dst, rect, img, img.Bounds(), draw.Over, nil)
}
