package testing

import (
	"fmt"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
)

// center returns the middle of box, rounded down.
func center(box layout.BoundingBox) layout.Point {
	return layout.Point{
		X: box.Pos.X + box.Size.Width/2,
		Y: box.Pos.Y + box.Size.Height/2,
	}
}

// Tap presses and releases at the center of the first widget matched by
// finder.
func (t *Tester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no widgets: %s", finder.Description())
	}
	box := result.Box()
	if box.Size.Width == 0 || box.Size.Height == 0 {
		return fmt.Errorf("Tap: widget has no area: %s", finder.Description())
	}
	return t.TapAt(center(box))
}

// TapAt presses and releases at p.
func (t *Tester) TapAt(p layout.Point) error {
	if err := t.SendPointerDown(p); err != nil {
		return err
	}
	return t.SendPointerUp(p)
}

// DragFrom presses at start, moves to end and releases there.
func (t *Tester) DragFrom(start, end layout.Point) error {
	if err := t.SendPointerDown(start); err != nil {
		return err
	}
	if err := t.SendPointerMove(end); err != nil {
		return err
	}
	return t.SendPointerUp(end)
}

// SendPointerDown hit-tests p and delivers a press to the deepest
// subscribed widget. That widget captures the pointer until release.
func (t *Tester) SendPointerDown(p layout.Point) error {
	id, err := core.DispatchAt(t.ec, t.root, p, event.PointerEvent{Kind: event.PointerDown, Pos: p})
	if err != nil {
		return err
	}
	t.pressed = &id
	return nil
}

// SendPointerMove delivers a move to the captured widget, or hit-tests p
// when no press is in progress.
func (t *Tester) SendPointerMove(p layout.Point) error {
	return t.sendCaptured(event.PointerEvent{Kind: event.PointerMove, Pos: p})
}

// SendPointerUp delivers a release to the captured widget and ends the
// capture.
func (t *Tester) SendPointerUp(p layout.Point) error {
	err := t.sendCaptured(event.PointerEvent{Kind: event.PointerUp, Pos: p})
	t.pressed = nil
	return err
}

func (t *Tester) sendCaptured(ev event.PointerEvent) error {
	if t.pressed != nil {
		return t.ec.Dispatch(*t.pressed, ev)
	}
	_, err := core.DispatchAt(t.ec, t.root, ev.Pos, ev)
	return err
}

// Type sends text to the focused widget.
func (t *Tester) Type(text string) error {
	return t.sendFocused(event.TextEvent{Text: text})
}

// SendKey sends a key press to the focused widget.
func (t *Tester) SendKey(k event.Key) error {
	return t.sendFocused(event.KeyEvent{Key: k})
}

func (t *Tester) sendFocused(ev event.Event) error {
	id, ok := t.ec.Focused()
	if !ok {
		return fmt.Errorf("no widget has focus")
	}
	return t.ec.Dispatch(id, ev)
}
