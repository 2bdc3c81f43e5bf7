package widgets

import (
	"context"
	"image/color"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
)

// Button wraps a single child with a margin and calls OnClick when a
// pointer is pressed and released inside it.
//
// Hosts should deliver the release to the button that saw the press even
// when the pointer has left it; a release outside the box cancels the
// click, as does moving outside while pressed.
type Button struct {
	parent[layout.EdgeInsets]
	pressed      *signal.Cell[bool]
	color        color.RGBA
	pressedColor color.RGBA
	onClick      func()
}

func (b *Button) Child() core.Widget {
	return b.children.At(0)
}

func (b *Button) SetChild(w core.Widget) {
	b.children.Replace(0, w)
}

// Pressed reports whether a press is in progress.
func (b *Button) Pressed() signal.Signal[bool] {
	return b.pressed
}

func (b *Button) Run(ctx context.Context, ec *event.Context) error {
	sub := ec.Subscribe(b.ID())
	defer sub.Close()
	return runAll(ctx,
		func(ctx context.Context) error {
			return b.run(ctx, ec)
		},
		func(ctx context.Context) error {
			return core.WatchRedraw(ctx, ec, b.Base, b.pressed)
		},
		func(ctx context.Context) error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case ev, ok := <-sub.C:
					if !ok {
						<-ctx.Done()
						return ctx.Err()
					}
					if pe, isPointer := ev.(event.PointerEvent); isPointer {
						b.pointer(pe)
					}
				}
			}
		},
	)
}

func (b *Button) pointer(ev event.PointerEvent) {
	inside := b.BoundingBox().Get().Contains(ev.Pos)
	switch ev.Kind {
	case event.PointerDown:
		if inside {
			b.pressed.Set(true)
		}
	case event.PointerMove:
		if !inside {
			b.pressed.Set(false)
		}
	case event.PointerUp:
		wasPressed := b.pressed.Get()
		b.pressed.Set(false)
		if wasPressed && inside && b.onClick != nil {
			callback("widgets.Button.onClick", b.onClick)
		}
	}
}

func (b *Button) Prepare(rc *render.Context) []render.Drawable {
	c := b.color
	if b.pressed.Get() {
		c = b.pressedColor
	}
	if c.A == 0 {
		return nil
	}
	return []render.Drawable{render.FillRect{Box: b.BoundingBox().Get(), Color: c}}
}

// ButtonBuilder configures a Button. The child is required.
type ButtonBuilder struct {
	child        core.Widget
	margin       layout.EdgeInsets
	color        color.RGBA
	pressedColor color.RGBA
	onClick      func()
	constraint   signal.Signal[layout.SizeConstraint]
}

// NewButton starts a transparent Button with no margin.
func NewButton() *ButtonBuilder {
	return &ButtonBuilder{}
}

func (b *ButtonBuilder) WithChild(w core.Widget) *ButtonBuilder {
	b.child = w
	return b
}

func (b *ButtonBuilder) WithMargin(m layout.EdgeInsets) *ButtonBuilder {
	b.margin = m
	return b
}

// WithColors sets the background at rest and while pressed.
func (b *ButtonBuilder) WithColors(normal, pressed color.RGBA) *ButtonBuilder {
	b.color = normal
	b.pressedColor = pressed
	return b
}

func (b *ButtonBuilder) OnClick(fn func()) *ButtonBuilder {
	b.onClick = fn
	return b
}

func (b *ButtonBuilder) WithConstraint(c signal.Signal[layout.SizeConstraint]) *ButtonBuilder {
	b.constraint = c
	return b
}

func (b *ButtonBuilder) Build() (*Button, error) {
	if b.child == nil {
		return nil, missing("Button", "Child")
	}
	return &Button{
		parent:       newParent(signal.NewList(b.child), b.margin, b.constraint, layout.Margin),
		pressed:      signal.NewCell(false),
		color:        b.color,
		pressedColor: b.pressedColor,
		onClick:      b.onClick,
	}, nil
}

func (b *ButtonBuilder) MustBuild() *Button {
	return must(b.Build())
}
