// Package config loads the optional weave.yaml project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/event"
)

// FileName is the name of the project file.
const FileName = "weave.yaml"

const (
	// DefaultSettleTimeout bounds how long tools wait for a tree to settle.
	DefaultSettleTimeout = 2 * time.Second
	// MaxEventBuffer is the largest accepted subscription buffer.
	MaxEventBuffer = 4096
)

// Config represents the optional weave.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// RuntimeConfig tunes the event context and tooling.
type RuntimeConfig struct {
	// EventBuffer is the per-widget subscription buffer. Zero means
	// event.DefaultBuffer.
	EventBuffer int `yaml:"event_buffer,omitempty"`
	// Verbose turns on the verbose error handler.
	Verbose bool `yaml:"verbose,omitempty"`
	// SettleTimeout bounds waits for layout to settle.
	SettleTimeout time.Duration `yaml:"settle_timeout,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	EventBuffer   int
	Verbose       bool
	SettleTimeout time.Duration
}

// EventOptions returns the event context options for the resolved values.
func (r *Resolved) EventOptions() []event.Option {
	return []event.Option{event.WithEventBuffer(r.EventBuffer)}
}

// ErrorHandler returns the log handler matching the verbose setting.
func (r *Resolved) ErrorHandler() errors.ErrorHandler {
	return &errors.LogHandler{Verbose: r.Verbose}
}

func configError(op string, err error) error {
	return &errors.WeaveError{Op: op, Kind: errors.KindConfig, Err: err}
}

// LoadOptional reads weave.yaml if present. A missing file yields an empty
// Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads weave.yaml (if present) from a module root and resolves
// defaults. The app name defaults to the last element of the module path.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	r := &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		EventBuffer:   cfg.Runtime.EventBuffer,
		Verbose:       cfg.Runtime.Verbose,
		SettleTimeout: cfg.Runtime.SettleTimeout,
	}
	if r.EventBuffer == 0 {
		r.EventBuffer = event.DefaultBuffer
	}
	if r.SettleTimeout == 0 {
		r.SettleTimeout = DefaultSettleTimeout
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Defaults returns the resolved values used outside any module.
func Defaults() *Resolved {
	return &Resolved{
		AppName:       "weave_app",
		EventBuffer:   event.DefaultBuffer,
		SettleTimeout: DefaultSettleTimeout,
	}
}

func (r *Resolved) validate() error {
	if r.EventBuffer < 1 || r.EventBuffer > MaxEventBuffer {
		return configError("config.Resolve", fmt.Errorf("runtime.event_buffer must be in [1, %d] (got %d)", MaxEventBuffer, r.EventBuffer))
	}
	if r.SettleTimeout < 0 {
		return configError("config.Resolve", fmt.Errorf("runtime.settle_timeout must be positive (got %s)", r.SettleTimeout))
	}
	return nil
}

// FindProjectRoot walks up from dir to find go.mod.
func FindProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", configError("config.FindProjectRoot", fmt.Errorf("not in a Go module (no go.mod found)"))
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", configError("config.Resolve", fmt.Errorf("failed to read go.mod: %w", err))
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", configError("config.Resolve", fmt.Errorf("could not determine module path from go.mod"))
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "weave_app"
	}
	return base
}
