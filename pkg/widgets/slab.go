package widgets

import (
	"context"
	"image/color"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
)

// Slab is a solid rectangle of color.
type Slab struct {
	*core.Base
	constraint signal.Signal[layout.SizeConstraint]
	color      signal.Signal[color.RGBA]
}

func (s *Slab) SizeConstraint() signal.Signal[layout.SizeConstraint] {
	return s.constraint
}

// Color returns the fill color signal.
func (s *Slab) Color() signal.Signal[color.RGBA] {
	return s.color
}

func (s *Slab) Run(ctx context.Context, ec *event.Context) error {
	return core.WatchRedraw(ctx, ec, s.Base, s.color, s.constraint)
}

func (s *Slab) Prepare(rc *render.Context) []render.Drawable {
	return []render.Drawable{render.FillRect{Box: s.BoundingBox().Get(), Color: s.color.Get()}}
}

// SlabBuilder configures a Slab. The color is required.
type SlabBuilder struct {
	constraint signal.Signal[layout.SizeConstraint]
	color      signal.Signal[color.RGBA]
}

func NewSlab() *SlabBuilder {
	return &SlabBuilder{}
}

// WithColor sets a fixed color.
func (b *SlabBuilder) WithColor(c color.RGBA) *SlabBuilder {
	b.color = signal.Const(c)
	return b
}

// WithColorSignal follows a changing color.
func (b *SlabBuilder) WithColorSignal(c signal.Signal[color.RGBA]) *SlabBuilder {
	b.color = c
	return b
}

// WithConstraint sets a fixed constraint. The default is Unconstrained.
func (b *SlabBuilder) WithConstraint(c layout.SizeConstraint) *SlabBuilder {
	b.constraint = signal.Const(c)
	return b
}

func (b *SlabBuilder) WithConstraintSignal(c signal.Signal[layout.SizeConstraint]) *SlabBuilder {
	b.constraint = c
	return b
}

func (b *SlabBuilder) Build() (*Slab, error) {
	if b.color == nil {
		return nil, missing("Slab", "Color")
	}
	constraint := b.constraint
	if constraint == nil {
		constraint = signal.Const(layout.Unconstrained())
	}
	return &Slab{Base: core.NewBase(), constraint: constraint, color: b.color}, nil
}

func (b *SlabBuilder) MustBuild() *Slab {
	return must(b.Build())
}
