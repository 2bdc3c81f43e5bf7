package core

import (
	"fmt"

	"github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
)

// HitTestChildren implements WidgetAt for containers. Children are tested
// in reverse paint order so the topmost child under p wins. If no child is
// hit but p is inside self, the path is just self.
func HitTestChildren(self Node, children []Widget, p layout.Point) []ID {
	if !self.BoundingBox().Get().Contains(p) {
		return nil
	}
	for i := len(children) - 1; i >= 0; i-- {
		if path := children[i].WidgetAt(p); len(path) > 0 {
			return append(path, self.ID())
		}
	}
	return []ID{self.ID()}
}

// WidgetAt returns the path of ids under p from the deepest widget up to
// root, or nil if p is outside root.
func WidgetAt(root Widget, p layout.Point) []ID {
	if root == nil {
		return nil
	}
	return root.WidgetAt(p)
}

// DispatchAt hit-tests p and delivers ev to the deepest widget on the path
// that has a live subscription. It returns the id the event was sent to.
// When nothing under p is subscribed, the error wraps
// errors.ErrNoSubscriber.
func DispatchAt(ec *event.Context, root Widget, p layout.Point, ev event.Event) (ID, error) {
	path := WidgetAt(root, p)
	for _, id := range path {
		if ec.Subscribed(id) {
			return id, ec.Dispatch(id, ev)
		}
	}
	target := ID{}
	if len(path) > 0 {
		target = path[0]
	}
	return target, &errors.DispatchError{
		Target: target.String(),
		Event:  fmt.Sprintf("%T", ev),
		Err:    errors.ErrNoSubscriber,
	}
}
