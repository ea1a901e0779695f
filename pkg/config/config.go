// Package config loads the optional uicore.yaml file that sets the screen
// size, pool capacity, frame budget, error verbosity and the draw command
// schema a host renderer expects.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/rendering"
	"github.com/go-drift/uicore/pkg/ui"
)

// FileName is the name of the configuration file.
const FileName = "uicore.yaml"

// Config represents the optional uicore.yaml configuration.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Pool     PoolConfig     `yaml:"pool"`
	Frame    FrameConfig    `yaml:"frame"`
	Errors   ErrorsConfig   `yaml:"errors"`
	Renderer RendererConfig `yaml:"renderer"`
}

// ScreenConfig sets the surface the root canvas fills.
type ScreenConfig struct {
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

// PoolConfig sizes the node pool.
type PoolConfig struct {
	Capacity int `yaml:"capacity,omitempty"`
}

// FrameConfig sets the frame budget.
type FrameConfig struct {
	Budget        string `yaml:"budget,omitempty"`
	LogOverBudget bool   `yaml:"logOverBudget,omitempty"`
	TraceSamples  int    `yaml:"traceSamples,omitempty"`
}

// ErrorsConfig controls the default error handler.
type ErrorsConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// RendererConfig names the command schema the renderer was built against.
type RendererConfig struct {
	Schema string `yaml:"schema,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ScreenSize    graphics.Vec2
	PoolCapacity  int
	FrameBudget   time.Duration
	LogOverBudget bool
	TraceSamples  int
	Verbose       bool
	Schema        string
}

// LoadOptional reads uicore.yaml from dir if present. A missing file
// yields an empty Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes configuration YAML. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads uicore.yaml from dir (if present), fills defaults and
// validates the result.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, errors.New("config.Resolve", errors.KindConfig, err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, errors.New("config.Resolve", errors.KindConfig, err)
	}
	r.Root = dir
	return r, nil
}

// Resolve fills defaults and validates cfg.
func (cfg *Config) Resolve() (*Resolved, error) {
	defaults := ui.DefaultOptions()
	r := &Resolved{
		ScreenSize:    defaults.ScreenSize,
		PoolCapacity:  defaults.PoolCapacity,
		FrameBudget:   defaults.FrameBudget,
		LogOverBudget: cfg.Frame.LogOverBudget,
		TraceSamples:  cfg.Frame.TraceSamples,
		Verbose:       cfg.Errors.Verbose,
		Schema:        rendering.SchemaVersion,
	}

	if cfg.Screen.Width < 0 || cfg.Screen.Height < 0 {
		return nil, fmt.Errorf("screen size must be positive (got %vx%v)", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.Width > 0 {
		r.ScreenSize.X = cfg.Screen.Width
	}
	if cfg.Screen.Height > 0 {
		r.ScreenSize.Y = cfg.Screen.Height
	}

	if cfg.Pool.Capacity < 0 {
		return nil, fmt.Errorf("pool.capacity must not be negative (got %d)", cfg.Pool.Capacity)
	}
	if cfg.Pool.Capacity > 0 {
		r.PoolCapacity = cfg.Pool.Capacity
	}

	if budget := strings.TrimSpace(cfg.Frame.Budget); budget != "" {
		d, err := time.ParseDuration(budget)
		if err != nil {
			return nil, fmt.Errorf("frame.budget: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("frame.budget must not be negative (got %s)", d)
		}
		r.FrameBudget = d
	}
	if cfg.Frame.TraceSamples < 0 {
		return nil, fmt.Errorf("frame.traceSamples must not be negative (got %d)", cfg.Frame.TraceSamples)
	}

	if schema := strings.TrimSpace(cfg.Renderer.Schema); schema != "" {
		if err := rendering.CheckSchema(schema); err != nil {
			return nil, fmt.Errorf("renderer.schema: %w", err)
		}
		r.Schema = schema
	}
	return r, nil
}

// Options returns the UserInterface options described by r.
func (r *Resolved) Options() ui.Options {
	return ui.Options{
		ScreenSize:    r.ScreenSize,
		PoolCapacity:  r.PoolCapacity,
		FrameBudget:   r.FrameBudget,
		LogOverBudget: r.LogOverBudget,
		TraceSamples:  r.TraceSamples,
	}
}

// ErrorHandler returns the error handler described by r.
func (r *Resolved) ErrorHandler() errors.ErrorHandler {
	return &errors.LogHandler{Verbose: r.Verbose}
}

// FindRoot walks up from dir to the first directory containing
// uicore.yaml. It returns dir itself when no file is found.
func FindRoot(dir string) string {
	for cur := dir; ; {
		if _, err := os.Stat(filepath.Join(cur, FileName)); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}
