package widgets

import (
	"context"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
)

// Box lays its children out in a row or a column with the Linear strategy.
//
//	row := widgets.NewBox().
//	    WithChildren(left, right).
//	    WithPadding(layout.EdgeInsetsAll(8)).
//	    MustBuild()
type Box struct {
	parent[layout.LinearExtras]
}

// Direction returns the main axis.
func (b *Box) Direction() layout.Direction {
	return b.extras.Get().Direction
}

// SetDirection changes the main axis and triggers a relayout.
func (b *Box) SetDirection(d layout.Direction) {
	b.extras.Update(func(e layout.LinearExtras) layout.LinearExtras {
		e.Direction = d
		return e
	})
}

// SetPadding changes the inner padding and triggers a relayout.
func (b *Box) SetPadding(p layout.EdgeInsets) {
	b.extras.Update(func(e layout.LinearExtras) layout.LinearExtras {
		e.Padding = p
		return e
	})
}

func (b *Box) Run(ctx context.Context, ec *event.Context) error {
	return b.run(ctx, ec)
}

// BoxBuilder configures a Box. Children are required.
type BoxBuilder struct {
	children   *signal.List[core.Widget]
	extras     layout.LinearExtras
	constraint signal.Signal[layout.SizeConstraint]
}

// NewBox starts a horizontal Box with no padding.
func NewBox() *BoxBuilder {
	return &BoxBuilder{extras: layout.LinearExtras{Direction: layout.Horizontal}}
}

// WithChildren sets the initial children.
func (b *BoxBuilder) WithChildren(children ...core.Widget) *BoxBuilder {
	b.children = signal.NewList(children...)
	return b
}

// WithChildList uses an existing reactive list.
func (b *BoxBuilder) WithChildList(children *signal.List[core.Widget]) *BoxBuilder {
	b.children = children
	return b
}

func (b *BoxBuilder) WithDirection(d layout.Direction) *BoxBuilder {
	b.extras.Direction = d
	return b
}

func (b *BoxBuilder) WithPadding(p layout.EdgeInsets) *BoxBuilder {
	b.extras.Padding = p
	return b
}

// WithConstraint sets the constraint the Box reports to its own parent.
func (b *BoxBuilder) WithConstraint(c signal.Signal[layout.SizeConstraint]) *BoxBuilder {
	b.constraint = c
	return b
}

func (b *BoxBuilder) Build() (*Box, error) {
	if b.children == nil {
		return nil, missing("Box", "Children")
	}
	return &Box{parent: newParent(b.children, b.extras, b.constraint, layout.Linear)}, nil
}

// MustBuild is like Build but panics on error.
func (b *BoxBuilder) MustBuild() *Box {
	return must(b.Build())
}
