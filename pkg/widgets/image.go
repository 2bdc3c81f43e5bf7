package widgets

import (
	"context"
	"image"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
)

// Image draws a raster image scaled to its box. It never asks for more
// than the image's own size.
type Image struct {
	*core.Base
	img        signal.Signal[image.Image]
	constraint signal.Signal[layout.SizeConstraint]
}

func (i *Image) SizeConstraint() signal.Signal[layout.SizeConstraint] {
	return i.constraint
}

func (i *Image) Image() signal.Signal[image.Image] {
	return i.img
}

func (i *Image) Run(ctx context.Context, ec *event.Context) error {
	return core.WatchRedraw(ctx, ec, i.Base, i.img)
}

func (i *Image) Prepare(rc *render.Context) []render.Drawable {
	img := i.img.Get()
	if img == nil {
		return nil
	}
	return []render.Drawable{render.ImageBlit{Box: i.BoundingBox().Get(), Image: img}}
}

// ImageBuilder configures an Image. The image is required.
type ImageBuilder struct {
	img signal.Signal[image.Image]
}

func NewImage() *ImageBuilder {
	return &ImageBuilder{}
}

func (b *ImageBuilder) WithImage(img image.Image) *ImageBuilder {
	if img != nil {
		b.img = signal.Const(img)
	}
	return b
}

func (b *ImageBuilder) WithImageSignal(s signal.Signal[image.Image]) *ImageBuilder {
	b.img = s
	return b
}

func (b *ImageBuilder) Build() (*Image, error) {
	if b.img == nil {
		return nil, missing("Image", "Image")
	}
	return &Image{
		Base: core.NewBase(),
		img:  b.img,
		constraint: signal.Map(b.img, func(img image.Image) layout.SizeConstraint {
			if img == nil {
				return layout.MaxSize(0, 0)
			}
			r := img.Bounds()
			return layout.MaxSize(uint32(r.Dx()), uint32(r.Dy()))
		}),
	}, nil
}

func (b *ImageBuilder) MustBuild() *Image {
	return must(b.Build())
}
