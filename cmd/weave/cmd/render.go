package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-drift/weave/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Rasterize the demo tree to a PNG",
		Long: `Mount the demo tree on a headless surface, wait for layout to settle
and rasterize one frame to a PNG file.

Flags:
  --size WxH        Surface size (default 320x240)
  -o, --output PATH Output file (default <app>.png)`,
		Usage: "weave render [--size WxH] [-o PATH]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseSurfaceArgs(args)
	if err != nil {
		return err
	}
	if opts.json {
		return fmt.Errorf("render does not support --json; use layout")
	}

	resolved, err := loadConfig()
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = resolved.AppName + ".png"
	}

	tester, err := mount(resolved, demoTree(resolved.AppName), opts.size)
	if err != nil {
		return err
	}
	defer tester.Cleanup()

	img := image.NewRGBA(image.Rect(0, 0, int(opts.size.Width), int(opts.size.Height)))
	pass := render.NewRasterPass(img)
	pass.Clear(color.White)

	rc := render.NewContext()
	drawables := render.Frame(tester.Root(), rc)
	render.Paint(pass, rc, drawables)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%d drawables, %dx%d)\n", output, len(drawables), opts.size.Width, opts.size.Height)
	return nil
}
