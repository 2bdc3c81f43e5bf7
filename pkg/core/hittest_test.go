package core

import (
	"errors"
	"slices"
	"testing"

	weaveerrors "github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
)

func TestWidgetAt_LaterSiblingWins(t *testing.T) {
	under := newTestLeaf(layout.Unconstrained())
	over := newTestLeaf(layout.Unconstrained())
	root := newTestContainer(under, over)
	root.SetBoundingBox(layout.Box(0, 0, 100, 100))
	under.SetBoundingBox(layout.Box(0, 0, 60, 60))
	over.SetBoundingBox(layout.Box(40, 40, 60, 60))

	tests := []struct {
		name string
		p    layout.Point
		want []ID
	}{
		{"overlap", layout.Point{X: 50, Y: 50}, []ID{over.ID(), root.ID()}},
		{"only under", layout.Point{X: 10, Y: 10}, []ID{under.ID(), root.ID()}},
		{"only over", layout.Point{X: 90, Y: 90}, []ID{over.ID(), root.ID()}},
		{"container only", layout.Point{X: 90, Y: 10}, []ID{root.ID()}},
		{"outside", layout.Point{X: 100, Y: 10}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WidgetAt(root, tt.p)
			if !slices.Equal(got, tt.want) {
				t.Errorf("WidgetAt(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestWidgetAt_Nested(t *testing.T) {
	leaf := newTestLeaf(layout.Unconstrained())
	inner := newTestContainer(leaf)
	root := newTestContainer(inner)
	root.SetBoundingBox(layout.Box(0, 0, 100, 100))
	inner.SetBoundingBox(layout.Box(10, 10, 50, 50))
	leaf.SetBoundingBox(layout.Box(20, 20, 10, 10))

	got := WidgetAt(root, layout.Point{X: 25, Y: 25})
	want := []ID{leaf.ID(), inner.ID(), root.ID()}
	if !slices.Equal(got, want) {
		t.Errorf("path = %v, want %v", got, want)
	}
	if WidgetAt(nil, layout.Point{}) != nil {
		t.Error("nil root should hit nothing")
	}
}

func TestDispatchAt_DeepestSubscriber(t *testing.T) {
	ec := event.NewContext()
	leaf := newTestLeaf(layout.Unconstrained())
	root := newTestContainer(leaf)
	root.SetBoundingBox(layout.Box(0, 0, 100, 100))
	leaf.SetBoundingBox(layout.Box(0, 0, 50, 50))

	rootSub := ec.Subscribe(root.ID())
	defer rootSub.Close()

	// The leaf is not subscribed, so the container receives the event.
	ev := event.PointerEvent{Kind: event.PointerDown, Pos: layout.Point{X: 5, Y: 5}}
	id, err := DispatchAt(ec, root, ev.Pos, ev)
	if err != nil {
		t.Fatalf("DispatchAt: %v", err)
	}
	if id != root.ID() {
		t.Errorf("delivered to %v, want container", id)
	}
	if got := <-rootSub.C; got != ev {
		t.Errorf("container got %v", got)
	}

	leafSub := ec.Subscribe(leaf.ID())
	defer leafSub.Close()
	id, err = DispatchAt(ec, root, ev.Pos, ev)
	if err != nil {
		t.Fatalf("DispatchAt: %v", err)
	}
	if id != leaf.ID() {
		t.Errorf("delivered to %v, want leaf", id)
	}
	if got := <-leafSub.C; got != ev {
		t.Errorf("leaf got %v", got)
	}
	select {
	case got := <-rootSub.C:
		t.Errorf("container should not receive %v", got)
	default:
	}
}

func TestDispatchAt_NoSubscriber(t *testing.T) {
	ec := event.NewContext()
	leaf := newTestLeaf(layout.Unconstrained())
	leaf.SetBoundingBox(layout.Box(0, 0, 10, 10))

	id, err := DispatchAt(ec, leaf, layout.Point{X: 1, Y: 1}, event.TextEvent{Text: "x"})
	if !errors.Is(err, weaveerrors.ErrNoSubscriber) {
		t.Fatalf("err = %v, want ErrNoSubscriber", err)
	}
	if id != leaf.ID() {
		t.Errorf("target = %v, want the hit leaf", id)
	}
	var de *weaveerrors.DispatchError
	if !errors.As(err, &de) || de.Event != "event.TextEvent" {
		t.Errorf("dispatch error = %#v", err)
	}

	_, err = DispatchAt(ec, leaf, layout.Point{X: 50, Y: 50}, event.TextEvent{Text: "x"})
	if !errors.Is(err, weaveerrors.ErrNoSubscriber) {
		t.Errorf("miss: err = %v, want ErrNoSubscriber", err)
	}
}

func TestWalkAndFind(t *testing.T) {
	a := newTestLeaf(layout.Unconstrained())
	b := newTestLeaf(layout.Unconstrained())
	inner := newTestContainer(b)
	root := newTestContainer(a, inner)

	var order []ID
	var depths []int
	Walk(root, func(w Widget, depth int) bool {
		order = append(order, w.ID())
		depths = append(depths, depth)
		return true
	})
	if want := []ID{root.ID(), a.ID(), inner.ID(), b.ID()}; !slices.Equal(order, want) {
		t.Errorf("walk order = %v, want %v", order, want)
	}
	if want := []int{0, 1, 1, 2}; !slices.Equal(depths, want) {
		t.Errorf("depths = %v, want %v", depths, want)
	}

	if Find(root, b.ID()) != Widget(b) {
		t.Error("Find did not locate nested leaf")
	}
	if Find(root, newTestLeaf(layout.Unconstrained()).ID()) != nil {
		t.Error("Find returned a widget for an unknown id")
	}
}

func TestBase_DirtyTracking(t *testing.T) {
	b := NewBase()
	if !b.IsDirty() {
		t.Fatal("new widgets start dirty")
	}
	if !b.TakeDirty() || b.IsDirty() {
		t.Fatal("TakeDirty should clear the flag")
	}
	if b.TakeDirty() {
		t.Fatal("second TakeDirty should report clean")
	}
	b.MarkDirty()
	if !b.IsDirty() {
		t.Fatal("MarkDirty should set the flag")
	}
}
