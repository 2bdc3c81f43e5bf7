package signal

import (
	"fmt"
	"slices"
	"sync"
)

// List is an observable ordered collection. Every structural change
// (insert, remove, replace, reset) notifies subscribers once. Get returns a
// copy, so snapshots are safe to keep across changes.
type List[T any] struct {
	mu        sync.RWMutex
	items     []T
	listeners listeners
}

// NewList creates a list holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Get returns a snapshot of the list.
func (l *List[T]) Get() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the item at index i.
func (l *List[T]) At(i int) T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[i]
}

// Subscribe registers a change listener.
func (l *List[T]) Subscribe(fn func()) func() {
	return l.listeners.add(fn)
}

// Push appends v.
func (l *List[T]) Push(v T) {
	l.mu.Lock()
	l.items = append(l.items, v)
	l.mu.Unlock()
	l.listeners.notify()
}

// Insert places v at index i, shifting later items. i may equal Len.
func (l *List[T]) Insert(i int, v T) {
	l.mu.Lock()
	if i < 0 || i > len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		panic(fmt.Sprintf("signal: insert index %d out of range [0,%d]", i, n))
	}
	l.items = slices.Insert(l.items, i, v)
	l.mu.Unlock()
	l.listeners.notify()
}

// Remove deletes and returns the item at index i.
func (l *List[T]) Remove(i int) T {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		panic(fmt.Sprintf("signal: remove index %d out of range [0,%d)", i, n))
	}
	old := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.mu.Unlock()
	l.listeners.notify()
	return old
}

// Replace swaps the item at index i for v and returns the previous item.
func (l *List[T]) Replace(i int, v T) T {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		panic(fmt.Sprintf("signal: replace index %d out of range [0,%d)", i, n))
	}
	old := l.items[i]
	l.items[i] = v
	l.mu.Unlock()
	l.listeners.notify()
	return old
}

// Reset replaces the whole contents.
func (l *List[T]) Reset(items ...T) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.mu.Unlock()
	l.listeners.notify()
}
