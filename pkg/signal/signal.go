// Package signal provides observable values for the widget runtime.
//
// A [Signal] is a value that can be read synchronously with Get and observed
// with Subscribe. Listeners are called after the value changes, outside any
// internal lock, on the goroutine that made the change. Listeners must not
// block; the usual pattern is to poke a channel obtained from [Watch]:
//
//	changed, stop := signal.Watch(widget.BoundingBox())
//	defer stop()
//	for {
//	    select {
//	    case <-ctx.Done():
//	        return ctx.Err()
//	    case <-changed:
//	        box := widget.BoundingBox().Get()
//	        ...
//	    }
//	}
package signal

import "sync"

// Signal is a reactive value source.
type Signal[T any] interface {
	// Get returns the current value.
	Get() T
	// Subscribe registers fn to be called after every change. The returned
	// function removes the listener; calling it more than once is safe.
	Subscribe(fn func()) (unsubscribe func())
}

// listeners is a set of change callbacks shared by Cell and List.
type listeners struct {
	mu     sync.Mutex
	nextID uint64
	fns    map[uint64]func()
}

func (l *listeners) add(fn func()) func() {
	l.mu.Lock()
	if l.fns == nil {
		l.fns = make(map[uint64]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners) snapshot() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		out = append(out, fn)
	}
	return out
}

func (l *listeners) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

func (l *listeners) notify() {
	for _, fn := range l.snapshot() {
		fn()
	}
}

// Cell is a mutable, thread-safe observable value.
type Cell[T any] struct {
	mu        sync.RWMutex
	value     T
	equal     func(a, b T) bool
	listeners listeners
}

// NewCell creates a cell that suppresses notifications for equal values.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// NewCellFunc creates a cell with a custom equality function. A nil equal
// means every Set notifies.
func NewCellFunc[T any](initial T, equal func(a, b T) bool) *Cell[T] {
	return &Cell[T]{value: initial, equal: equal}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies listeners if it differs from the current value.
// It reports whether the value changed.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	if c.equal != nil && c.equal(c.value, v) {
		c.mu.Unlock()
		return false
	}
	c.value = v
	c.mu.Unlock()
	c.listeners.notify()
	return true
}

// Update applies fn to the current value atomically and stores the result.
func (c *Cell[T]) Update(fn func(T) T) bool {
	c.mu.Lock()
	next := fn(c.value)
	if c.equal != nil && c.equal(c.value, next) {
		c.mu.Unlock()
		return false
	}
	c.value = next
	c.mu.Unlock()
	c.listeners.notify()
	return true
}

// Subscribe registers a change listener.
func (c *Cell[T]) Subscribe(fn func()) func() {
	return c.listeners.add(fn)
}

// ListenerCount returns the number of registered listeners.
func (c *Cell[T]) ListenerCount() int {
	return c.listeners.count()
}

type constSignal[T any] struct{ value T }

func (s constSignal[T]) Get() T { return s.value }
func (s constSignal[T]) Subscribe(func()) func() { return func() {} }

// Const returns a signal that never changes.
func Const[T any](v T) Signal[T] {
	return constSignal[T]{value: v}
}

type mapped[S, T any] struct {
	src Signal[S]
	fn  func(S) T
}

func (m mapped[S, T]) Get() T { return m.fn(m.src.Get()) }
func (m mapped[S, T]) Subscribe(fn func()) func() { return m.src.Subscribe(fn) }

// Map derives a signal whose value is fn applied to src. The derived value
// is recomputed on every Get; fn must be pure.
func Map[S, T any](src Signal[S], fn func(S) T) Signal[T] {
	return mapped[S, T]{src: src, fn: fn}
}

// Watch converts a signal's change notifications into a channel with a
// buffer of one. Multiple changes between receives collapse into a single
// wake-up, so receivers must re-read the signal after waking.
func Watch[T any](s Signal[T]) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	stop := s.Subscribe(func() { Poke(ch) })
	return ch, stop
}

// Poke performs a non-blocking send on a wake-up channel.
func Poke(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
