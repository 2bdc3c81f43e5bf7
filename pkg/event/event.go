// Package event routes input and focus events to widgets.
//
// A [Context] is shared by every widget of one UI instance. It holds the
// subscription table (widget id to bounded channel), the focused widget, a
// coalescing redraw signal for the host, and a counter of layout passes in
// progress. Delivery is at-most-once: events that cannot be queued are
// dropped and reported to the caller, never retried.
package event

import (
	"fmt"

	"github.com/go-drift/weave/pkg/layout"
)

// Event is any value delivered to a widget subscription.
type Event interface {
	isEvent()
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// PointerEvent is a pointer press, release or move at Pos.
type PointerEvent struct {
	Kind PointerKind
	Pos  layout.Point
}

// Key identifies a non-text key.
type Key int

const (
	KeyBackspace Key = iota
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
)

// KeyEvent is a non-text key press.
type KeyEvent struct {
	Key Key
}

// TextEvent carries committed text input.
type TextEvent struct {
	Text string
}

// FocusEvent is sent when a widget gains or loses focus.
type FocusEvent struct {
	Focused bool
}

func (PointerEvent) isEvent() {}
func (KeyEvent) isEvent()     {}
func (TextEvent) isEvent()    {}
func (FocusEvent) isEvent()   {}
