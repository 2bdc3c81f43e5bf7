package layout

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/go-drift/weave/pkg/signal"
)

// Engine keeps a container's child boxes in step with its reactive inputs.
//
// The constraint input is a signal of signals: the outer list changes when
// children are added or removed, and each member changes when that child's
// content changes. Run subscribes to the current members and re-subscribes
// whenever the list itself changes, so a change anywhere triggers exactly
// one recompute that reads every input's latest value.
type Engine[E any] struct {
	box         signal.Signal[BoundingBox]
	constraints signal.Signal[[]signal.Signal[SizeConstraint]]
	extras      signal.Signal[E]
	strategy    Strategy[E]

	mu     sync.Mutex // serializes Recompute
	out    *signal.Cell[[]BoundingBox]
	passes atomic.Int64
}

// NewEngine creates an engine. Output is empty until the first Recompute.
func NewEngine[E any](
	box signal.Signal[BoundingBox],
	constraints signal.Signal[[]signal.Signal[SizeConstraint]],
	extras signal.Signal[E],
	strategy Strategy[E],
) *Engine[E] {
	return &Engine[E]{
		box:         box,
		constraints: constraints,
		extras:      extras,
		strategy:    strategy,
		out: signal.NewCellFunc[[]BoundingBox](nil, func(a, b []BoundingBox) bool {
			return slices.Equal(a, b)
		}),
	}
}

// Output is the latest computed layout. It only notifies when the boxes
// differ from the previous pass.
func (e *Engine[E]) Output() signal.Signal[[]BoundingBox] {
	return e.out
}

// Passes returns how many times the strategy has run.
func (e *Engine[E]) Passes() int64 {
	return e.passes.Load()
}

// Recompute runs the strategy against the current inputs and publishes the
// result.
func (e *Engine[E]) Recompute() []BoundingBox {
	e.mu.Lock()
	defer e.mu.Unlock()

	members := e.constraints.Get()
	snapshot := make([]SizeConstraint, len(members))
	for i, m := range members {
		snapshot[i] = m.Get()
	}
	boxes := e.strategy(e.box.Get(), snapshot, e.extras.Get())
	e.passes.Add(1)
	e.out.Set(boxes)
	return boxes
}

// Run recomputes on every input change until ctx is cancelled.
func (e *Engine[E]) Run(ctx context.Context) error {
	wake := make(chan struct{}, 1)
	listChanged := make(chan struct{}, 1)
	poke := func() { signal.Poke(wake) }

	stopBox := e.box.Subscribe(poke)
	defer stopBox()
	stopExtras := e.extras.Subscribe(poke)
	defer stopExtras()
	stopList := e.constraints.Subscribe(func() {
		signal.Poke(listChanged)
		signal.Poke(wake)
	})
	defer stopList()

	var members []func()
	subscribeMembers := func() {
		for _, stop := range members {
			stop()
		}
		members = members[:0]
		for _, m := range e.constraints.Get() {
			members = append(members, m.Subscribe(poke))
		}
	}
	defer func() {
		for _, stop := range members {
			stop()
		}
	}()

	subscribeMembers()
	e.Recompute()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
		}
		select {
		case <-listChanged:
			subscribeMembers()
		default:
		}
		e.Recompute()
	}
}
