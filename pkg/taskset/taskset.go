// Package taskset provides a keyed collection of cancellable tasks that is
// driven as a single unit.
//
// A container uses one Set per child list: each live child has exactly one
// task under its id, inserting under an existing id cancels the previous
// task, and removing an id cancels its task immediately. The Set itself never
// completes; Run blocks until its context ends so it can sit alongside other
// wake sources in a select loop.
package taskset

import (
	"context"
	"sync"

	"github.com/go-drift/weave/pkg/errors"
)

// Task is a unit of work bound to a key. It must return promptly once ctx
// is cancelled.
type Task func(ctx context.Context) error

// Option configures a Set.
type Option[K comparable] func(*Set[K])

// WithOnExit registers fn to be called from the task goroutine whenever a
// task returns. Tasks stopped by replacement or removal report
// context.Canceled (or whatever they returned).
func WithOnExit[K comparable](fn func(key K, err error)) Option[K] {
	return func(s *Set[K]) { s.onExit = fn }
}

// WithName sets the operation name used when reporting task panics.
func WithName[K comparable](name string) Option[K] {
	return func(s *Set[K]) { s.name = name }
}

type entry struct {
	task    Task
	cancel  context.CancelFunc
	started bool
}

// Set is a keyed set of tasks. The zero value is not usable; call New.
type Set[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
	order   []K

	// wake has a buffer of one and is poked on every membership change.
	wake    chan struct{}
	changed chan struct{}

	// ctx is non-nil while Run is active.
	ctx context.Context
	wg  sync.WaitGroup

	onExit func(K, error)
	name   string
}

// New creates an empty Set.
func New[K comparable](opts ...Option[K]) *Set[K] {
	s := &Set[K]{
		entries: make(map[K]*entry),
		wake:    make(chan struct{}, 1),
		changed: make(chan struct{}, 1),
		name:    "taskset.task",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert registers task under key, cancelling any task previously registered
// under the same key. The task is started by the driver (Run).
func (s *Set[K]) Insert(key K, task Task) {
	s.mu.Lock()
	if prev, ok := s.entries[key]; ok {
		if prev.cancel != nil {
			prev.cancel()
		}
	} else {
		s.order = append(s.order, key)
	}
	s.entries[key] = &entry{task: task}
	s.mu.Unlock()
	s.notify()
}

// Remove cancels and drops the task under key. It reports whether a task
// was registered. Removing an absent key has no effect.
func (s *Set[K]) Remove(key K) bool {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		s.dropLocked(key)
		if e.cancel != nil {
			e.cancel()
		}
	}
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

// Contains reports whether a task is registered under key.
func (s *Set[K]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// Keys returns the registered keys in insertion order.
func (s *Set[K]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]K, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered tasks.
func (s *Set[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Changed returns a channel that receives after membership changes.
// Notifications coalesce.
func (s *Set[K]) Changed() <-chan struct{} {
	return s.changed
}

// Run drives the set until ctx is cancelled: pending tasks are started, and
// the driver re-checks after every membership change. On return every task
// has been cancelled and has exited. Run returns ctx.Err().
//
// Only one Run may be active at a time.
func (s *Set[K]) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.ctx != nil {
		s.mu.Unlock()
		panic("taskset: Run called concurrently")
	}
	s.ctx = ctx
	s.mu.Unlock()

	defer s.shutdown()

	for {
		s.startPending()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		}
	}
}

func (s *Set[K]) startPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil || s.ctx.Err() != nil {
		return
	}
	for _, key := range s.order {
		e := s.entries[key]
		if e.started {
			continue
		}
		taskCtx, cancel := context.WithCancel(s.ctx)
		e.cancel = cancel
		e.started = true
		s.wg.Add(1)
		go s.run(taskCtx, key, e)
	}
}

func (s *Set[K]) run(ctx context.Context, key K, e *entry) (err error) {
	defer s.wg.Done()
	defer func() {
		e.cancel()
		s.mu.Lock()
		current := s.entries[key] == e
		if current {
			s.dropLocked(key)
		}
		s.mu.Unlock()
		if current {
			s.notify()
		}
		if s.onExit != nil {
			s.onExit(key, err)
		}
	}()
	defer errors.RecoverAsError(s.name, &err)
	return e.task(ctx)
}

func (s *Set[K]) shutdown() {
	s.mu.Lock()
	for _, e := range s.entries {
		if e.cancel != nil {
			e.cancel()
		}
	}
	s.mu.Unlock()
	s.wg.Wait()

	s.mu.Lock()
	// Tasks that never started stay registered and start on the next Run.
	for _, e := range s.entries {
		e.started = false
		e.cancel = nil
	}
	s.ctx = nil
	s.mu.Unlock()
}

func (s *Set[K]) dropLocked(key K) {
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set[K]) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
	select {
	case s.changed <- struct{}{}:
	default:
	}
}
