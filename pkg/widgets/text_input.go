package widgets

import (
	"context"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/unicode/norm"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
)

// TextInput is a single line editable text field.
//
// A pointer press inside the field focuses it and places the caret at the
// nearest character boundary. While focused, TextEvents insert at the caret
// and KeyEvents edit or move it. Enter submits and Escape blurs. Inserted
// text is normalized to NFC.
type TextInput struct {
	*core.Base
	text    *signal.Cell[string]
	caret   *signal.Cell[int]
	focused *signal.Cell[bool]

	placeholder      string
	color            color.RGBA
	placeholderColor color.RGBA
	background       color.RGBA
	face             font.Face
	onChange         func(string)
	onSubmit         func(string)

	constraint signal.Signal[layout.SizeConstraint]
}

func (t *TextInput) SizeConstraint() signal.Signal[layout.SizeConstraint] {
	return t.constraint
}

// Text returns the current text.
func (t *TextInput) Text() signal.Signal[string] {
	return t.text
}

// Caret returns the caret position in runes.
func (t *TextInput) Caret() signal.Signal[int] {
	return t.caret
}

// Focused reports whether the field has input focus.
func (t *TextInput) Focused() signal.Signal[bool] {
	return t.focused
}

// SetText replaces the text and moves the caret to the end. The text is
// normalized to NFC.
func (t *TextInput) SetText(s string) {
	runes := []rune(norm.NFC.String(s))
	t.edit(runes, len(runes))
}

func (t *TextInput) edit(runes []rune, caret int) {
	s := string(runes)
	changed := t.text.Set(s)
	t.caret.Set(caret)
	if changed && t.onChange != nil {
		callback("widgets.TextInput.onChange", func() { t.onChange(s) })
	}
}

func (t *TextInput) Run(ctx context.Context, ec *event.Context) error {
	sub := ec.Subscribe(t.ID())
	defer sub.Close()
	return runAll(ctx,
		func(ctx context.Context) error {
			return core.WatchRedraw(ctx, ec, t.Base, t.text, t.caret, t.focused)
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
					t.handle(ec, ev)
				}
			}
		},
	)
}

func (t *TextInput) handle(ec *event.Context, ev event.Event) {
	switch ev := ev.(type) {
	case event.PointerEvent:
		if ev.Kind != event.PointerDown || !t.BoundingBox().Get().Contains(ev.Pos) {
			return
		}
		t.caret.Set(t.caretAt(ev.Pos))
		ec.Focus(t.ID())
	case event.FocusEvent:
		t.focused.Set(ev.Focused)
	case event.TextEvent:
		if !t.focused.Get() || ev.Text == "" {
			return
		}
		runes := []rune(t.text.Get())
		at := clampCaret(t.caret.Get(), len(runes))
		// A combining mark typed on its own composes with the text before
		// the caret, so the whole result is normalized, not just ev.Text.
		head := []rune(norm.NFC.String(string(runes[:at]) + ev.Text))
		out := []rune(norm.NFC.String(string(head) + string(runes[at:])))
		t.edit(out, clampCaret(len(head), len(out)))
	case event.KeyEvent:
		if !t.focused.Get() {
			return
		}
		t.key(ec, ev.Key)
	}
}

func (t *TextInput) key(ec *event.Context, k event.Key) {
	runes := []rune(t.text.Get())
	at := clampCaret(t.caret.Get(), len(runes))
	switch k {
	case event.KeyBackspace:
		if at > 0 {
			t.edit(append(runes[:at-1:at-1], runes[at:]...), at-1)
		}
	case event.KeyDelete:
		if at < len(runes) {
			t.edit(append(runes[:at:at], runes[at+1:]...), at)
		}
	case event.KeyLeft:
		if at > 0 {
			t.caret.Set(at - 1)
		}
	case event.KeyRight:
		if at < len(runes) {
			t.caret.Set(at + 1)
		}
	case event.KeyHome:
		t.caret.Set(0)
	case event.KeyEnd:
		t.caret.Set(len(runes))
	case event.KeyEnter:
		if t.onSubmit != nil {
			callback("widgets.TextInput.onSubmit", func() { t.onSubmit(string(runes)) })
		}
	case event.KeyEscape:
		ec.Blur()
	}
}

func clampCaret(c, n int) int {
	return max(0, min(c, n))
}

// caretAt returns the character boundary closest to p.
func (t *TextInput) caretAt(p layout.Point) int {
	box := t.BoundingBox().Get()
	x := int(p.X) - int(box.Pos.X)
	runes := []rune(t.text.Get())
	prev := 0
	for i := 1; i <= len(runes); i++ {
		w := int(render.MeasureText(t.face, string(runes[:i])).Width)
		if w >= x {
			if w-x < x-prev {
				return i
			}
			return i - 1
		}
		prev = w
	}
	return len(runes)
}

func (t *TextInput) Prepare(rc *render.Context) []render.Drawable {
	box := t.BoundingBox().Get()
	var out []render.Drawable
	if t.background.A != 0 {
		out = append(out, render.FillRect{Box: box, Color: t.background})
	}
	text := t.text.Get()
	switch {
	case text != "":
		out = append(out, render.TextRun{Box: box, Text: text, Color: t.color, Face: t.face})
	case t.placeholder != "":
		out = append(out, render.TextRun{Box: box, Text: t.placeholder, Color: t.placeholderColor, Face: t.face})
	}
	if t.focused.Get() {
		runes := []rune(text)
		prefix := string(runes[:clampCaret(t.caret.Get(), len(runes))])
		x := render.MeasureText(t.face, prefix).Width
		if box.Size.Width > 0 && x >= box.Size.Width {
			x = box.Size.Width - 1
		}
		out = append(out, render.FillRect{
			Box:   layout.Box(box.Pos.X+x, box.Pos.Y, 1, box.Size.Height),
			Color: t.color,
		})
	}
	return out
}

// TextInputBuilder configures a TextInput. Nothing is required.
type TextInputBuilder struct {
	text             string
	placeholder      string
	color            color.RGBA
	placeholderColor color.RGBA
	background       color.RGBA
	face             font.Face
	onChange         func(string)
	onSubmit         func(string)
}

func NewTextInput() *TextInputBuilder {
	return &TextInputBuilder{
		color:            black,
		placeholderColor: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		background:       transparent,
		face:             basicfont.Face7x13,
	}
}

// WithText sets the initial text, normalized to NFC. The caret starts at
// its end.
func (b *TextInputBuilder) WithText(s string) *TextInputBuilder {
	b.text = s
	return b
}

// WithPlaceholder sets text shown while the field is empty.
func (b *TextInputBuilder) WithPlaceholder(s string) *TextInputBuilder {
	b.placeholder = s
	return b
}

func (b *TextInputBuilder) WithColor(c color.RGBA) *TextInputBuilder {
	b.color = c
	return b
}

func (b *TextInputBuilder) WithPlaceholderColor(c color.RGBA) *TextInputBuilder {
	b.placeholderColor = c
	return b
}

func (b *TextInputBuilder) WithBackground(c color.RGBA) *TextInputBuilder {
	b.background = c
	return b
}

// WithFace sets the face the field is measured, hit-tested and drawn with.
func (b *TextInputBuilder) WithFace(f font.Face) *TextInputBuilder {
	b.face = f
	return b
}

// OnChange is called after every edit that changes the text.
func (b *TextInputBuilder) OnChange(fn func(string)) *TextInputBuilder {
	b.onChange = fn
	return b
}

// OnSubmit is called with the current text when Enter is pressed.
func (b *TextInputBuilder) OnSubmit(fn func(string)) *TextInputBuilder {
	b.onSubmit = fn
	return b
}

func (b *TextInputBuilder) Build() (*TextInput, error) {
	initial := norm.NFC.String(b.text)
	text := signal.NewCell(initial)
	face := b.face
	placeholder := b.placeholder
	return &TextInput{
		Base:             core.NewBase(),
		text:             text,
		caret:            signal.NewCell(len([]rune(initial))),
		focused:          signal.NewCell(false),
		placeholder:      b.placeholder,
		color:            b.color,
		placeholderColor: b.placeholderColor,
		background:       b.background,
		face:             face,
		onChange:         b.onChange,
		onSubmit:         b.onSubmit,
		constraint: signal.Map[string](text, func(s string) layout.SizeConstraint {
			if s == "" {
				s = placeholder
			}
			size := render.MeasureText(face, s)
			return layout.MinSize(size.Width+1, size.Height)
		}),
	}, nil
}

func (b *TextInputBuilder) MustBuild() *TextInput {
	return must(b.Build())
}
