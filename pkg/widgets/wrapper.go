package widgets

import (
	"context"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
)

// Wrapper insets a single child by a fixed margin.
type Wrapper struct {
	parent[layout.EdgeInsets]
}

func (w *Wrapper) Child() core.Widget {
	return w.children.At(0)
}

func (w *Wrapper) SetChild(child core.Widget) {
	w.children.Replace(0, child)
}

// SetMargin changes the margin and triggers a relayout.
func (w *Wrapper) SetMargin(m layout.EdgeInsets) {
	w.extras.Set(m)
}

func (w *Wrapper) Run(ctx context.Context, ec *event.Context) error {
	return w.run(ctx, ec)
}

// WrapperBuilder configures a Wrapper. The child is required.
type WrapperBuilder struct {
	child      core.Widget
	margin     layout.EdgeInsets
	constraint signal.Signal[layout.SizeConstraint]
}

func NewWrapper() *WrapperBuilder {
	return &WrapperBuilder{}
}

func (b *WrapperBuilder) WithChild(w core.Widget) *WrapperBuilder {
	b.child = w
	return b
}

func (b *WrapperBuilder) WithMargin(m layout.EdgeInsets) *WrapperBuilder {
	b.margin = m
	return b
}

func (b *WrapperBuilder) WithConstraint(c signal.Signal[layout.SizeConstraint]) *WrapperBuilder {
	b.constraint = c
	return b
}

func (b *WrapperBuilder) Build() (*Wrapper, error) {
	if b.child == nil {
		return nil, missing("Wrapper", "Child")
	}
	return &Wrapper{parent: newParent(signal.NewList(b.child), b.margin, b.constraint, layout.Margin)}, nil
}

func (b *WrapperBuilder) MustBuild() *Wrapper {
	return must(b.Build())
}
