package testing

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
	// DefaultSettleTimeout bounds PumpAndSettle and PumpUntil.
	DefaultSettleTimeout = 2 * time.Second
)

// ErrSettleTimeout is returned when PumpAndSettle or PumpUntil exceeds its
// timeout.
var ErrSettleTimeout = errors.New("tester timed out: tree did not settle")

// settleSamples is how many consecutive identical layout samples count as
// settled.
const settleSamples = 3

// Tester mounts a widget tree on a real event context and drives it the
// way a host would: it runs the root widget, resolves points by hit
// testing and dispatches input through the context.
type Tester struct {
	ec      *event.Context
	rc      *render.Context
	root    core.Widget
	size    layout.Size
	timeout time.Duration
	cancel  context.CancelFunc
	done    chan error
	runErr  error
	pressed *core.ID
}

// NewTester creates a tester with the default surface size. Call Cleanup
// when done, or use NewTesterWithT instead.
func NewTester(opts ...event.Option) *Tester {
	return &Tester{
		ec:      event.NewContext(opts...),
		rc:      render.NewContext(),
		size:    layout.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		timeout: DefaultSettleTimeout,
	}
}

// NewTesterWithT creates a tester that stops its tree via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, opts ...event.Option) *Tester {
	tester := NewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup cancels the mounted tree and waits for every widget task to
// return.
func (t *Tester) Cleanup() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.runErr = <-t.done
	t.cancel = nil
	t.done = nil
	t.root = nil
	t.pressed = nil
}

// SetSize sets the surface size. When a tree is mounted the root is
// resized immediately.
func (t *Tester) SetSize(size layout.Size) {
	t.size = size
	if t.root != nil {
		t.root.SetBoundingBox(layout.BoundingBox{Size: size})
	}
}

// SetSettleTimeout changes the timeout of PumpAndSettle and PumpUntil.
func (t *Tester) SetSettleTimeout(d time.Duration) {
	t.timeout = d
}

// Context returns the event context the tree runs against.
func (t *Tester) Context() *event.Context {
	return t.ec
}

// Root returns the mounted root widget.
func (t *Tester) Root() core.Widget {
	return t.root
}

// RunError returns what the previous root's Run returned after it was
// stopped.
func (t *Tester) RunError() error {
	return t.runErr
}

// PumpWidget stops any mounted tree, mounts root filling the surface and
// waits for layout to settle.
func (t *Tester) PumpWidget(root core.Widget) error {
	t.Cleanup()

	root.SetBoundingBox(layout.BoundingBox{Size: t.size})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.Run(ctx, t.ec) }()
	t.root = root
	t.cancel = cancel
	t.done = done
	return t.PumpAndSettle()
}

// Pump gives running widgets a chance to react to the last change.
func (t *Tester) Pump() {
	time.Sleep(time.Millisecond)
}

// PumpAndSettle waits until no layout is in flight and the bounding boxes
// of the whole tree stop changing.
func (t *Tester) PumpAndSettle() error {
	deadline := time.Now().Add(t.timeout)
	var last []layout.BoundingBox
	stable := 0
	for time.Now().Before(deadline) {
		t.Pump()
		if t.ec.LayoutsInFlight() != 0 {
			stable = 0
			continue
		}
		sample := t.boxes()
		if slices.Equal(sample, last) {
			stable++
			if stable >= settleSamples {
				return nil
			}
		} else {
			stable = 0
			last = sample
		}
	}
	return ErrSettleTimeout
}

// PumpUntil waits until cond holds.
func (t *Tester) PumpUntil(cond func() bool) error {
	deadline := time.Now().Add(t.timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return nil
		}
		t.Pump()
	}
	if cond() {
		return nil
	}
	return ErrSettleTimeout
}

func (t *Tester) boxes() []layout.BoundingBox {
	var out []layout.BoundingBox
	core.Walk(t.root, func(w core.Widget, _ int) bool {
		out = append(out, w.BoundingBox().Get())
		return true
	})
	return out
}

// Find evaluates a finder against the mounted tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		widgets: finder.Evaluate(t.root),
		finder:  finder,
	}
}

// FindByID returns the widget with the given id, or nil.
func (t *Tester) FindByID(id core.ID) core.Widget {
	return core.Find(t.root, id)
}

// Render collects a frame and replays it into a recorder.
func (t *Tester) Render() *render.Recorder {
	rec := &render.Recorder{}
	if t.root != nil {
		render.Paint(rec, t.rc, render.Frame(t.root, t.rc))
	}
	return rec
}
