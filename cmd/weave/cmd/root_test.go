package cmd

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/weave/pkg/layout"
	weavetest "github.com/go-drift/weave/pkg/testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestExecute_Version(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"version"}} {
		out := captureStdout(t)
		if err := Execute(args); err != nil {
			t.Fatalf("Execute(%v): %v", args, err)
		}
		if !strings.Contains(out.String(), Version) {
			t.Errorf("Execute(%v) output = %q", args, out.String())
		}
	}
}

func TestExecute_Help(t *testing.T) {
	out := captureStdout(t)
	if err := Execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"layout", "render", "version"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %q", name)
		}
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	captureStdout(t)
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestExecute_Layout(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"layout", "--size", "320x240"}); err != nil {
		t.Fatalf("layout: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Box#0 (0,0 320x240)") {
		t.Errorf("missing root box in output:\n%s", text)
	}
	for _, want := range []string{"Stack#0", "TextInput#0", "Button#0", `"OK"`} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %s:\n%s", want, text)
		}
	}
}

func TestExecute_LayoutJSON(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"layout", "--json", "--size=200x100"}); err != nil {
		t.Fatalf("layout --json: %v", err)
	}
	var snap weavetest.Snapshot
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("output is not a snapshot: %v\n%s", err, out.String())
	}
	if snap.Tree == nil || snap.Tree.Type != "Box" {
		t.Fatalf("root = %+v", snap.Tree)
	}
	if snap.Tree.Box != [4]uint32{0, 0, 200, 100} {
		t.Errorf("root box = %v", snap.Tree.Box)
	}
	if len(snap.Tree.Children) != 4 {
		t.Errorf("root has %d children, want 4", len(snap.Tree.Children))
	}
	if len(snap.DisplayOps) == 0 {
		t.Error("expected display ops")
	}
}

func TestExecute_Render(t *testing.T) {
	captureStdout(t)
	path := filepath.Join(t.TempDir(), "demo.png")
	if err := Execute([]string{"render", "-s", "100x80", "-o", path}); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("bounds = %v", b)
	}
	// The root's padding is never painted.
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("corner = %v, want white", got)
	}
}

func TestExecute_BadFlags(t *testing.T) {
	captureStdout(t)
	tests := [][]string{
		{"layout", "--size"},
		{"layout", "--size", "12"},
		{"layout", "--bogus"},
		{"layout", "-o", "x.png"},
		{"render", "--json"},
	}
	for _, args := range tests {
		if err := Execute(args); err == nil {
			t.Errorf("Execute(%v) succeeded, want error", args)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    layout.Size
		wantErr bool
	}{
		{"320x240", layout.Size{Width: 320, Height: 240}, false},
		{"10X20", layout.Size{Width: 10, Height: 20}, false},
		{"0x10", layout.Size{}, true},
		{"10", layout.Size{}, true},
		{"ax10", layout.Size{}, true},
		{"10x-1", layout.Size{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
