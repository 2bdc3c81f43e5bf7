package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/event"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.App.Name != "" || cfg.Runtime.EventBuffer != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptional_Parses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: demo
runtime:
  event_buffer: 32
  verbose: true
  settle_timeout: 500ms
`)
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.App.Name != "demo" {
		t.Errorf("name = %q", cfg.App.Name)
	}
	if cfg.Runtime.EventBuffer != 32 || !cfg.Runtime.Verbose {
		t.Errorf("runtime = %+v", cfg.Runtime)
	}
	if cfg.Runtime.SettleTimeout != 500*time.Millisecond {
		t.Errorf("settle_timeout = %v", cfg.Runtime.SettleTimeout)
	}
}

func TestLoadOptional_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "app: [unterminated")
	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var we *errors.WeaveError
	if !errors.As(err, &we) || we.Kind != errors.KindConfig {
		t.Errorf("err = %v, want a config WeaveError", err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/dashboard/v2\n\ngo 1.24\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.ModulePath != "example.com/acme/dashboard/v2" {
		t.Errorf("module path = %q", r.ModulePath)
	}
	if r.AppName != "dashboard" {
		t.Errorf("app name = %q, want dashboard", r.AppName)
	}
	if r.EventBuffer != event.DefaultBuffer || r.SettleTimeout != DefaultSettleTimeout || r.Verbose {
		t.Errorf("defaults = %+v", r)
	}
	if len(r.EventOptions()) != 1 {
		t.Error("expected one event option")
	}
}

func TestResolve_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/app\n")
	writeFile(t, dir, FileName, "app:\n  name: \" custom \"\nruntime:\n  verbose: true\n  event_buffer: 8\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "custom" || r.EventBuffer != 8 || !r.Verbose {
		t.Errorf("resolved = %+v", r)
	}
	if h, ok := r.ErrorHandler().(*errors.LogHandler); !ok || !h.Verbose {
		t.Errorf("handler = %#v, want verbose LogHandler", r.ErrorHandler())
	}
}

func TestResolve_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"buffer too large", "runtime:\n  event_buffer: 5000\n", "event_buffer"},
		{"negative buffer", "runtime:\n  event_buffer: -1\n", "event_buffer"},
		{"negative timeout", "runtime:\n  settle_timeout: -1s\n", "settle_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "go.mod", "module example.com/app\n")
			writeFile(t, dir, FileName, tt.yaml)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestResolve_NoModule(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("expected error without go.mod")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/app\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestDefaultAppName(t *testing.T) {
	tests := []struct {
		module, dir, want string
	}{
		{"example.com/foo", "/tmp/x", "foo"},
		{"example.com/foo/v3", "/tmp/x", "foo"},
		{"example.com/foo/bar", "/tmp/x", "bar"},
	}
	for _, tt := range tests {
		if got := defaultAppName(tt.module, tt.dir); got != tt.want {
			t.Errorf("defaultAppName(%q) = %q, want %q", tt.module, got, tt.want)
		}
	}
}
