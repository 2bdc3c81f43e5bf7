package event

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/ids"
)

// DefaultBuffer is the per-subscription channel capacity.
const DefaultBuffer = 16

// Option configures a Context.
type Option func(*Context)

// WithEventBuffer sets the per-subscription channel capacity.
func WithEventBuffer(n int) Option {
	return func(c *Context) {
		if n > 0 {
			c.buffer = n
		}
	}
}

// Subscription is a widget's event stream. Receive from C; call Close when
// the widget stops listening.
type Subscription struct {
	// C receives events addressed to the widget.
	C <-chan Event

	ch     chan Event
	closed bool // guarded by Context.mu
	ctx    *Context
}

// Close marks the subscription closed and closes C. The table entry is
// pruned by the next dispatch to its id.
func (s *Subscription) Close() {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Context is the per-UI-instance event router.
type Context struct {
	mu     sync.Mutex
	subs   map[ids.ID]*Subscription
	buffer int

	focusMu sync.Mutex
	focused ids.ID

	redraw   chan struct{}
	inFlight atomic.Int64
}

// NewContext creates an empty Context.
func NewContext(opts ...Option) *Context {
	c := &Context{
		subs:   make(map[ids.ID]*Subscription),
		buffer: DefaultBuffer,
		redraw: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers a bounded event channel for id, replacing (and
// closing) any previous subscription for the same id.
func (c *Context) Subscribe(id ids.ID) *Subscription {
	ch := make(chan Event, c.buffer)
	sub := &Subscription{C: ch, ch: ch, ctx: c}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.subs[id]; ok && !prev.closed {
		prev.closed = true
		close(prev.ch)
	}
	c.subs[id] = sub
	return sub
}

// Subscribed reports whether id has a live subscription.
func (c *Context) Subscribed(id ids.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub, ok := c.subs[id]
	return ok && !sub.closed
}

// Dispatch delivers ev to id without blocking. It returns a
// *errors.DispatchError wrapping errors.ErrNoSubscriber, errors.ErrClosed
// or errors.ErrFull when the event is dropped.
func (c *Context) Dispatch(id ids.ID, ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub, ok := c.subs[id]
	if !ok {
		return dispatchError(id, ev, errors.ErrNoSubscriber)
	}
	if sub.closed {
		delete(c.subs, id)
		return dispatchError(id, ev, errors.ErrClosed)
	}
	select {
	case sub.ch <- ev:
		return nil
	default:
		return dispatchError(id, ev, errors.ErrFull)
	}
}

func dispatchError(id ids.ID, ev Event, err error) error {
	return &errors.DispatchError{
		Target: id.String(),
		Event:  fmt.Sprintf("%T", ev),
		Err:    err,
	}
}

// Focus gives focus to id. The previously focused widget, if any, receives
// FocusEvent{Focused: false} and id receives FocusEvent{Focused: true}.
// Focusing the already-focused id does nothing.
func (c *Context) Focus(id ids.ID) {
	if id.IsNil() {
		c.Blur()
		return
	}
	// focusMu is held through both sends so concurrent focus changes
	// deliver their events in the order focus moved. Dispatch never blocks.
	c.focusMu.Lock()
	defer c.focusMu.Unlock()
	prev := c.focused
	if prev == id {
		return
	}
	c.focused = id
	if !prev.IsNil() {
		c.report("event.Focus", c.Dispatch(prev, FocusEvent{Focused: false}))
	}
	c.report("event.Focus", c.Dispatch(id, FocusEvent{Focused: true}))
}

// Blur clears focus, notifying the previously focused widget.
func (c *Context) Blur() {
	c.focusMu.Lock()
	defer c.focusMu.Unlock()
	prev := c.focused
	c.focused = ids.Nil
	if !prev.IsNil() {
		c.report("event.Blur", c.Dispatch(prev, FocusEvent{Focused: false}))
	}
}

// Focused returns the focused id, if any.
func (c *Context) Focused() (ids.ID, bool) {
	c.focusMu.Lock()
	defer c.focusMu.Unlock()
	return c.focused, !c.focused.IsNil()
}

// HasFocus reports whether id is focused.
func (c *Context) HasFocus(id ids.ID) bool {
	focused, ok := c.Focused()
	return ok && focused == id
}

// report forwards focus notification failures. A widget without a
// subscription simply does not care about focus, so that case is silent.
func (c *Context) report(op string, err error) {
	if err == nil || errors.Is(err, errors.ErrNoSubscriber) {
		return
	}
	errors.Report(&errors.WeaveError{Op: op, Kind: errors.KindDispatch, Err: err})
}

// SignalRedraw asks the host to redraw. Calls made before the host
// receives from Redraws collapse into one.
func (c *Context) SignalRedraw() {
	select {
	case c.redraw <- struct{}{}:
	default:
	}
}

// Redraws returns the channel the host receives redraw requests from.
func (c *Context) Redraws() <-chan struct{} {
	return c.redraw
}

// LayoutToken marks a layout pass in progress. Release it when the pass
// is committed; releasing twice is safe.
type LayoutToken struct {
	once sync.Once
	ctx  *Context
}

// AcquireLayoutToken increments the in-flight layout counter. It never
// blocks.
func (c *Context) AcquireLayoutToken() *LayoutToken {
	c.inFlight.Add(1)
	return &LayoutToken{ctx: c}
}

// Release decrements the in-flight layout counter.
func (t *LayoutToken) Release() {
	t.once.Do(func() { t.ctx.inFlight.Add(-1) })
}

// LayoutsInFlight returns the number of unreleased layout tokens. Hosts
// can skip sampling a frame while it is non-zero.
func (c *Context) LayoutsInFlight() int64 {
	return c.inFlight.Load()
}
