package core

import (
	"context"
	"sync/atomic"

	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/ids"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
)

// ID identifies a widget.
type ID = ids.ID

// Node is the identity and placement of a widget. *Base implements it.
type Node interface {
	// ID returns the widget's identifier.
	ID() ID
	// BoundingBox is the box last assigned by the parent.
	BoundingBox() signal.Signal[layout.BoundingBox]
}

// Widget is a node of the UI tree.
type Widget interface {
	Node
	// SizeConstraint is the widget's sizing policy. It may change at runtime.
	SizeConstraint() signal.Signal[layout.SizeConstraint]
	// SetBoundingBox is called by the parent only.
	SetBoundingBox(layout.BoundingBox)
	// Children returns a snapshot of the widget's children in paint order.
	Children() []Widget
	// WidgetAt returns the path of ids under p, from the deepest widget up
	// to this one, or nil if p is outside the widget.
	WidgetAt(p layout.Point) []ID
	// Run keeps the widget live until ctx is cancelled.
	Run(ctx context.Context, ec *event.Context) error
}

// Base holds the state every widget shares: identity, bounding box and the
// dirty flag. Embed a *Base created with NewBase.
type Base struct {
	id    ID
	box   *signal.Cell[layout.BoundingBox]
	dirty atomic.Bool
}

// NewBase allocates a Base with a fresh ID and a zero bounding box. New
// widgets start dirty.
func NewBase() *Base {
	b := &Base{
		id:  ids.New(),
		box: signal.NewCell(layout.BoundingBox{}),
	}
	b.dirty.Store(true)
	return b
}

// ID returns the widget's identifier.
func (b *Base) ID() ID {
	return b.id
}

// BoundingBox returns the widget's bounding box signal.
func (b *Base) BoundingBox() signal.Signal[layout.BoundingBox] {
	return b.box
}

// SetBoundingBox stores box. Setting an equal box does not notify.
func (b *Base) SetBoundingBox(box layout.BoundingBox) {
	b.box.Set(box)
}

// Children returns nil. Containers override it.
func (b *Base) Children() []Widget {
	return nil
}

// WidgetAt hit-tests a leaf.
func (b *Base) WidgetAt(p layout.Point) []ID {
	if b.box.Get().Contains(p) {
		return []ID{b.id}
	}
	return nil
}

// MarkDirty flags the widget for repaint.
func (b *Base) MarkDirty() {
	b.dirty.Store(true)
}

// IsDirty reports whether the widget needs repaint.
func (b *Base) IsDirty() bool {
	return b.dirty.Load()
}

// TakeDirty clears the dirty flag and reports whether it was set.
func (b *Base) TakeDirty() bool {
	return b.dirty.Swap(false)
}

// Subscribable is any signal, regardless of its value type.
type Subscribable interface {
	Subscribe(fn func()) (unsubscribe func())
}

// WatchRedraw is the run loop of a leaf: whenever the widget's bounding box
// or any of deps changes, the widget is marked dirty and a redraw is
// requested. It returns ctx.Err() when ctx is cancelled.
func WatchRedraw(ctx context.Context, ec *event.Context, b *Base, deps ...Subscribable) error {
	wake := make(chan struct{}, 1)
	poke := func() { signal.Poke(wake) }

	stop := b.box.Subscribe(poke)
	defer stop()
	for _, d := range deps {
		stopDep := d.Subscribe(poke)
		defer stopDep()
	}

	b.MarkDirty()
	ec.SignalRedraw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
			b.MarkDirty()
			ec.SignalRedraw()
		}
	}
}

// Walk visits root and its descendants depth first in paint order. If fn
// returns false the widget's children are skipped.
func Walk(root Widget, fn func(w Widget, depth int) bool) {
	walk(root, 0, fn)
}

func walk(w Widget, depth int, fn func(Widget, int) bool) {
	if w == nil || !fn(w, depth) {
		return
	}
	for _, child := range w.Children() {
		walk(child, depth+1, fn)
	}
}

// Find returns the widget with the given id under root, or nil.
func Find(root Widget, id ID) Widget {
	var found Widget
	Walk(root, func(w Widget, _ int) bool {
		if found != nil {
			return false
		}
		if w.ID() == id {
			found = w
			return false
		}
		return true
	})
	return found
}
