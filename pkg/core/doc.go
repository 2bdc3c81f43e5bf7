// Package core defines the widget capability interface and the run loop
// shared by every container.
//
// # Widgets
//
// A Widget is a node of the UI tree. It exposes a reactive size constraint,
// a bounding box written by its parent, a snapshot of its children, a hit
// test, and a Run method that keeps the widget live until its context is
// cancelled. Leaves embed [Base] for identity, bounding box and dirty
// tracking:
//
//	type Swatch struct {
//	    *core.Base
//	    color signal.Signal[color.RGBA]
//	}
//
//	func (s *Swatch) Run(ctx context.Context, ec *event.Context) error {
//	    return core.WatchRedraw(ctx, ec, s.Base, s.color)
//	}
//
// # Containers
//
// Containers own a reactive child list and a layout strategy and delegate
// their Run to [RunContainer], which keeps layout, bounding boxes and child
// tasks consistent:
//
//	func (b *Box) Run(ctx context.Context, ec *event.Context) error {
//	    return core.RunContainer(ctx, ec, b, b.children, b.extras, layout.Linear)
//	}
//
// Every child runs in its own task; removing a child from the list cancels
// that task, and cancelling a container's context cancels its whole
// subtree.
//
// # Host Ingress
//
// Hosts resolve screen points with [WidgetAt] and deliver input with
// [DispatchAt], which routes to the deepest subscribed widget under the
// point.
package core
