package widgets

import (
	"context"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
)

// Stack overlays its children in the same padded area. Later children
// paint over earlier ones and win hit tests.
type Stack struct {
	parent[layout.AnchorExtras]
}

// SetAnchor moves every child to a new anchor.
func (s *Stack) SetAnchor(a layout.Anchor) {
	s.extras.Update(func(e layout.AnchorExtras) layout.AnchorExtras {
		e.Anchor = a
		return e
	})
}

func (s *Stack) Run(ctx context.Context, ec *event.Context) error {
	return s.run(ctx, ec)
}

// StackBuilder configures a Stack. Children are required.
type StackBuilder struct {
	children   *signal.List[core.Widget]
	extras     layout.AnchorExtras
	constraint signal.Signal[layout.SizeConstraint]
}

// NewStack starts a Stack anchored at the top left.
func NewStack() *StackBuilder {
	return &StackBuilder{extras: layout.AnchorExtras{Anchor: layout.AnchorTopLeft}}
}

func (b *StackBuilder) WithChildren(children ...core.Widget) *StackBuilder {
	b.children = signal.NewList(children...)
	return b
}

func (b *StackBuilder) WithChildList(children *signal.List[core.Widget]) *StackBuilder {
	b.children = children
	return b
}

func (b *StackBuilder) WithAnchor(a layout.Anchor) *StackBuilder {
	b.extras.Anchor = a
	return b
}

func (b *StackBuilder) WithPadding(p layout.EdgeInsets) *StackBuilder {
	b.extras.Padding = p
	return b
}

func (b *StackBuilder) WithConstraint(c signal.Signal[layout.SizeConstraint]) *StackBuilder {
	b.constraint = c
	return b
}

func (b *StackBuilder) Build() (*Stack, error) {
	if b.children == nil {
		return nil, missing("Stack", "Children")
	}
	return &Stack{parent: newParent(b.children, b.extras, b.constraint, layout.Anchored)}, nil
}

func (b *StackBuilder) MustBuild() *Stack {
	return must(b.Build())
}
