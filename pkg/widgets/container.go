package widgets

import (
	"context"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
)

// Container places a single child at an anchor inside its padded box. The
// child is sized by its own constraint: a MaxSize child keeps its size and
// is positioned, an unconstrained child fills the padded box.
type Container struct {
	parent[layout.AnchorExtras]
}

// Child returns the current child.
func (c *Container) Child() core.Widget {
	return c.children.At(0)
}

// SetChild swaps the child. The old child's task is cancelled.
func (c *Container) SetChild(w core.Widget) {
	c.children.Replace(0, w)
}

func (c *Container) SetAnchor(a layout.Anchor) {
	c.extras.Update(func(e layout.AnchorExtras) layout.AnchorExtras {
		e.Anchor = a
		return e
	})
}

func (c *Container) SetPadding(p layout.EdgeInsets) {
	c.extras.Update(func(e layout.AnchorExtras) layout.AnchorExtras {
		e.Padding = p
		return e
	})
}

func (c *Container) Run(ctx context.Context, ec *event.Context) error {
	return c.run(ctx, ec)
}

// ContainerBuilder configures a Container. The child is required.
type ContainerBuilder struct {
	child      core.Widget
	extras     layout.AnchorExtras
	constraint signal.Signal[layout.SizeConstraint]
}

// NewContainer starts a Container that centers its child.
func NewContainer() *ContainerBuilder {
	return &ContainerBuilder{extras: layout.AnchorExtras{Anchor: layout.AnchorCenter}}
}

func (b *ContainerBuilder) WithChild(w core.Widget) *ContainerBuilder {
	b.child = w
	return b
}

func (b *ContainerBuilder) WithAnchor(a layout.Anchor) *ContainerBuilder {
	b.extras.Anchor = a
	return b
}

func (b *ContainerBuilder) WithPadding(p layout.EdgeInsets) *ContainerBuilder {
	b.extras.Padding = p
	return b
}

func (b *ContainerBuilder) WithConstraint(c signal.Signal[layout.SizeConstraint]) *ContainerBuilder {
	b.constraint = c
	return b
}

func (b *ContainerBuilder) Build() (*Container, error) {
	if b.child == nil {
		return nil, missing("Container", "Child")
	}
	return &Container{parent: newParent(signal.NewList(b.child), b.extras, b.constraint, layout.Anchored)}, nil
}

func (b *ContainerBuilder) MustBuild() *Container {
	return must(b.Build())
}
