package core

import (
	"context"
	"sync"

	"github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
	"github.com/go-drift/weave/pkg/taskset"
)

// Constraints adapts a child list to the constraint input of a layout
// engine.
func Constraints(children *signal.List[Widget]) signal.Signal[[]signal.Signal[layout.SizeConstraint]] {
	return signal.Map[[]Widget](children, func(ws []Widget) []signal.Signal[layout.SizeConstraint] {
		out := make([]signal.Signal[layout.SizeConstraint], len(ws))
		for i, w := range ws {
			out[i] = w.SizeConstraint()
		}
		return out
	})
}

type childExit struct {
	id  ID
	err error
}

// RunContainer drives a container until ctx is cancelled. self supplies
// the container's identity and bounding box.
//
// It multiplexes three sources in one loop:
//
//   - a new layout from the engine is committed to the children in order,
//     under a layout token;
//   - a child task that returned is reported (containers never complete, so
//     nothing else happens);
//   - a change of the child list starts a task for every new child and
//     cancels the task of every removed one, so exactly one task runs per
//     live child.
//
// On return every child task has been cancelled and has exited.
func RunContainer[E any](
	ctx context.Context,
	ec *event.Context,
	self Node,
	children *signal.List[Widget],
	extras signal.Signal[E],
	strategy layout.Strategy[E],
) error {
	ctx, cancel := context.WithCancel(ctx)

	engine := layout.NewEngine(self.BoundingBox(), Constraints(children), extras, strategy)

	var exitMu sync.Mutex
	var exits []childExit
	progress := make(chan struct{}, 1)
	tasks := taskset.New(
		taskset.WithName[ID]("core.RunContainer.child"),
		taskset.WithOnExit(func(id ID, err error) {
			if err == nil || errors.Is(err, context.Canceled) {
				return
			}
			exitMu.Lock()
			exits = append(exits, childExit{id: id, err: err})
			exitMu.Unlock()
			signal.Poke(progress)
		}),
	)

	layoutChanged, stopLayout := signal.Watch(engine.Output())
	defer stopLayout()
	childrenChanged, stopChildren := signal.Watch[[]Widget](children)
	defer stopChildren()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		engine.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		tasks.Run(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	running := make(map[ID]bool)
	syncChildren := func() {
		live := children.Get()
		seen := make(map[ID]bool, len(live))
		for _, child := range live {
			id := child.ID()
			seen[id] = true
			if running[id] {
				continue
			}
			running[id] = true
			tasks.Insert(id, func(ctx context.Context) error {
				return child.Run(ctx, ec)
			})
		}
		for id := range running {
			if !seen[id] {
				delete(running, id)
				tasks.Remove(id)
			}
		}
	}
	commit := func() {
		token := ec.AcquireLayoutToken()
		defer token.Release()

		live := children.Get()
		boxes := engine.Output().Get()
		switch {
		case len(boxes) == len(live):
			for i, child := range live {
				child.SetBoundingBox(boxes[i])
			}
		case len(boxes) == 0:
			// Degenerate layout: hide every child until the next pass.
			for _, child := range live {
				child.SetBoundingBox(layout.BoundingBox{})
			}
		}
		// Otherwise the output predates the current child list and a newer
		// pass is already on its way.
	}

	syncChildren()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-layoutChanged:
			commit()
		case <-progress:
			exitMu.Lock()
			pending := exits
			exits = nil
			exitMu.Unlock()
			for _, e := range pending {
				kind := errors.KindTask
				var pe *errors.PanicError
				if errors.As(e.err, &pe) {
					kind = errors.KindPanic
				}
				errors.Report(&errors.WeaveError{
					Op:     "core.RunContainer",
					Kind:   kind,
					Widget: e.id.String(),
					Err:    e.err,
				})
			}
		case <-childrenChanged:
			syncChildren()
			commit()
		}
	}
}
