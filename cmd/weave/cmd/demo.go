package cmd

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-drift/weave/pkg/config"
	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/signal"
	weavetest "github.com/go-drift/weave/pkg/testing"
	"github.com/go-drift/weave/pkg/widgets"
)

const (
	defaultWidth  = 320
	defaultHeight = 240
)

var (
	swatchRed   = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	swatchGreen = color.RGBA{R: 0x43, G: 0xa0, B: 0x47, A: 0xff}
	swatchBlue  = color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	panel       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// demoTree builds the tree the layout and render commands show: a title
// bar, a row of swatches with a badge overlay, a text input and a button.
func demoTree(title string) core.Widget {
	header := widgets.NewContainer().
		WithChild(widgets.NewLabel().WithText(title).MustBuild()).
		WithConstraint(signal.Const(layout.MaxHeight(24))).
		MustBuild()

	swatches := widgets.NewBox().
		WithChildren(
			widgets.NewSlab().WithColor(swatchRed).MustBuild(),
			widgets.NewSlab().WithColor(swatchGreen).WithConstraint(layout.MinSize(80, 0)).MustBuild(),
			widgets.NewSlab().WithColor(swatchBlue).WithConstraint(layout.MaxWidth(40)).MustBuild(),
		).
		WithPadding(layout.EdgeInsetsAll(4)).
		MustBuild()

	badge := widgets.NewWrapper().
		WithChild(widgets.NewSlab().WithColor(panel).WithConstraint(layout.MaxSize(24, 24)).MustBuild()).
		WithMargin(layout.EdgeInsetsAll(8)).
		MustBuild()
	overlay := widgets.NewStack().
		WithChildren(swatches, badge).
		WithAnchor(layout.AnchorTopRight).
		MustBuild()

	input := widgets.NewTextInput().
		WithPlaceholder("type here").
		WithBackground(panel).
		MustBuild()

	button := widgets.NewButton().
		WithChild(widgets.NewLabel().WithText("OK").MustBuild()).
		WithMargin(layout.EdgeInsetsSymmetric(8, 4)).
		WithConstraint(signal.Const(layout.MaxSize(60, 24))).
		MustBuild()

	return widgets.NewBox().
		WithDirection(layout.Vertical).
		WithPadding(layout.EdgeInsetsAll(8)).
		WithChildren(header, overlay, input, button).
		MustBuild()
}

// mount runs root on a headless tester sized to size and waits for layout
// to settle. The caller must call Cleanup on the returned tester.
func mount(resolved *config.Resolved, root core.Widget, size layout.Size) (*weavetest.Tester, error) {
	tester := weavetest.NewTester(resolved.EventOptions()...)
	tester.SetSize(size)
	tester.SetSettleTimeout(resolved.SettleTimeout)
	if err := tester.PumpWidget(root); err != nil {
		tester.Cleanup()
		return nil, fmt.Errorf("layout did not settle within %s: %w", resolved.SettleTimeout, err)
	}
	return tester, nil
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (layout.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return layout.Size{}, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return layout.Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return layout.Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if width == 0 || height == 0 {
		return layout.Size{}, fmt.Errorf("size %q must be non-zero", s)
	}
	return layout.Size{Width: uint32(width), Height: uint32(height)}, nil
}

type surfaceOptions struct {
	size   layout.Size
	output string
	json   bool
}

func parseSurfaceArgs(args []string) (surfaceOptions, error) {
	opts := surfaceOptions{size: layout.Size{Width: defaultWidth, Height: defaultHeight}}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--size" || arg == "-s":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			size, err := parseSize(args[i])
			if err != nil {
				return opts, err
			}
			opts.size = size
		case strings.HasPrefix(arg, "--size="):
			size, err := parseSize(strings.TrimPrefix(arg, "--size="))
			if err != nil {
				return opts, err
			}
			opts.size = size
		case arg == "--output" || arg == "-o":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a path", arg)
			}
			i++
			opts.output = args[i]
		case strings.HasPrefix(arg, "--output="):
			opts.output = strings.TrimPrefix(arg, "--output=")
		case arg == "--json":
			opts.json = true
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}
