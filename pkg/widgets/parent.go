package widgets

import (
	"context"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
)

// parent is the state shared by container widgets: a reactive child list,
// strategy extras and the container's own constraint.
type parent[E any] struct {
	*core.Base
	children   *signal.List[core.Widget]
	extras     *signal.Cell[E]
	constraint signal.Signal[layout.SizeConstraint]
	strategy   layout.Strategy[E]
}

func newParent[E comparable](children *signal.List[core.Widget], extras E, constraint signal.Signal[layout.SizeConstraint], strategy layout.Strategy[E]) parent[E] {
	if constraint == nil {
		constraint = signal.Const(layout.Unconstrained())
	}
	return parent[E]{
		Base:       core.NewBase(),
		children:   children,
		extras:     signal.NewCell(extras),
		constraint: constraint,
		strategy:   strategy,
	}
}

func (p *parent[E]) SizeConstraint() signal.Signal[layout.SizeConstraint] {
	return p.constraint
}

// Children returns a snapshot of the children in paint order.
func (p *parent[E]) Children() []core.Widget {
	return p.children.Get()
}

// ChildList returns the reactive child list. Mutating it adds or removes
// children while the widget runs.
func (p *parent[E]) ChildList() *signal.List[core.Widget] {
	return p.children
}

func (p *parent[E]) WidgetAt(pt layout.Point) []core.ID {
	return core.HitTestChildren(p.Base, p.Children(), pt)
}

// run keeps layout, child tasks and the redraw signal up to date.
func (p *parent[E]) run(ctx context.Context, ec *event.Context) error {
	return runAll(ctx,
		func(ctx context.Context) error {
			return core.RunContainer(ctx, ec, p.Base, p.children, signal.Signal[E](p.extras), p.strategy)
		},
		func(ctx context.Context) error {
			return core.WatchRedraw(ctx, ec, p.Base, p.extras)
		},
	)
}
