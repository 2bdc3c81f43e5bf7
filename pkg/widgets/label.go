package widgets

import (
	"context"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/event"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/render"
	"github.com/go-drift/weave/pkg/signal"
)

// Label draws one line of text. Its constraint is the measured size of the
// text, so a parent never makes it smaller than its content.
type Label struct {
	*core.Base
	text       signal.Signal[string]
	color      signal.Signal[color.RGBA]
	face       font.Face
	constraint signal.Signal[layout.SizeConstraint]
}

func (l *Label) SizeConstraint() signal.Signal[layout.SizeConstraint] {
	return l.constraint
}

// Text returns the text signal.
func (l *Label) Text() signal.Signal[string] {
	return l.text
}

func (l *Label) Run(ctx context.Context, ec *event.Context) error {
	return core.WatchRedraw(ctx, ec, l.Base, l.text, l.color)
}

func (l *Label) Prepare(rc *render.Context) []render.Drawable {
	return []render.Drawable{render.TextRun{
		Box:   l.BoundingBox().Get(),
		Text:  l.text.Get(),
		Color: l.color.Get(),
		Face:  l.face,
	}}
}

// LabelBuilder configures a Label. The text is required.
type LabelBuilder struct {
	text  signal.Signal[string]
	color signal.Signal[color.RGBA]
	face  font.Face
}

// NewLabel starts a black Label measured with the 7x13 bitmap face.
func NewLabel() *LabelBuilder {
	return &LabelBuilder{color: signal.Const(black), face: basicfont.Face7x13}
}

func (b *LabelBuilder) WithText(s string) *LabelBuilder {
	b.text = signal.Const(s)
	return b
}

func (b *LabelBuilder) WithTextSignal(s signal.Signal[string]) *LabelBuilder {
	b.text = s
	return b
}

func (b *LabelBuilder) WithColor(c color.RGBA) *LabelBuilder {
	b.color = signal.Const(c)
	return b
}

// WithFace sets the face the text is measured and drawn with.
func (b *LabelBuilder) WithFace(f font.Face) *LabelBuilder {
	b.face = f
	return b
}

func (b *LabelBuilder) Build() (*Label, error) {
	if b.text == nil {
		return nil, missing("Label", "Text")
	}
	face := b.face
	return &Label{
		Base:  core.NewBase(),
		text:  b.text,
		color: b.color,
		face:  face,
		constraint: signal.Map(b.text, func(s string) layout.SizeConstraint {
			size := render.MeasureText(face, s)
			return layout.MinSize(size.Width, size.Height)
		}),
	}, nil
}

func (b *LabelBuilder) MustBuild() *Label {
	return must(b.Build())
}
