package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	weavetest "github.com/go-drift/weave/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print the settled layout of the demo tree",
		Long: `Mount the demo tree on a headless surface, wait for layout to settle
and print every widget with its bounding box.

Flags:
  --size WxH   Surface size (default 320x240)
  --json       Print the tree and display list as JSON`,
		Usage: "weave layout [--size WxH] [--json]",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
	opts, err := parseSurfaceArgs(args)
	if err != nil {
		return err
	}
	if opts.output != "" {
		return fmt.Errorf("layout does not write files; use render")
	}

	resolved, err := loadConfig()
	if err != nil {
		return err
	}

	tester, err := mount(resolved, demoTree(resolved.AppName), opts.size)
	if err != nil {
		return err
	}
	defer tester.Cleanup()

	snap := tester.CaptureSnapshot()
	if opts.json {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	fmt.Fprintf(stdout, "%s on %dx%d\n", resolved.AppName, opts.size.Width, opts.size.Height)
	printNode(snap.Tree, 0)
	return nil
}

func printNode(n *weavetest.Node, depth int) {
	if n == nil {
		return
	}
	line := fmt.Sprintf("%s%s (%d,%d %dx%d)", strings.Repeat("  ", depth), n.ID, n.Box[0], n.Box[1], n.Box[2], n.Box[3])
	if n.Text != "" {
		line += fmt.Sprintf(" %q", n.Text)
	}
	fmt.Fprintln(stdout, line)
	for _, c := range n.Children {
		printNode(c, depth+1)
	}
}
