package widgets

import (
	"context"
	"image/color"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/weave/pkg/errors"
)

var (
	black       = color.RGBA{A: 255}
	transparent = color.RGBA{}
)

func missing(widget, field string) error {
	return &errors.BuildError{
		Widget:    widget,
		Field:     field,
		Err:       errors.ErrMissingField,
		Timestamp: time.Now(),
	}
}

// callback runs a user callback, reporting a panic to the error handler
// instead of letting it take down the widget's event loop.
func callback(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}

func must[W any](w W, err error) W {
	if err != nil {
		panic(err)
	}
	return w
}

// runAll runs the loops of one widget until ctx is cancelled or one of
// them fails, then stops the others.
func runAll(ctx context.Context, loops ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, loop := range loops {
		g.Go(func() error { return loop(ctx) })
	}
	return g.Wait()
}
