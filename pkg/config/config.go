// Package config loads the chromatica configuration file. Both YAML and HCL
// are accepted:
//
//	# .chromatica.hcl
//	log {
//	  level = "debug"
//	  color = true
//	}
//	trace {
//	  enabled = true
//	  path    = "AST_out.log"
//	}
//	patterns = ["src/**/*.{c,h}"]
//
// Command line flags override whatever the file sets.
package config

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// FileNames are the names Discover looks for, in order.
var FileNames = []string{".chromatica.yaml", ".chromatica.yml", ".chromatica.hcl"}

const (
	DefaultTracePath = "AST_out.log"
	DefaultPattern   = "**/*.{c,h,cc,cpp,cxx,hh,hpp,hxx,m,mm}"
)

type Config struct {
	Log      *LogBlock   `json:"log,omitempty" yaml:"log,omitempty" hcl:"log,block"`
	Trace    *TraceBlock `json:"trace,omitempty" yaml:"trace,omitempty" hcl:"trace,block"`
	Patterns []string    `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"patterns,optional"`

	// dir is where the file was loaded from; patterns are relative to it.
	dir string
}

type LogBlock struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty" hcl:"level,optional"`
	Color bool   `json:"color,omitempty" yaml:"color,omitempty" hcl:"color,optional"`
}

// TraceBlock controls the per-token trace written during highlighting.
type TraceBlock struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty" hcl:"enabled,optional"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty" hcl:"path,optional"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.fill()
	return cfg
}

func (c *Config) fill() {
	if c.Log == nil {
		c.Log = &LogBlock{}
	}
	if c.Log.Level == "" {
		c.Log.Level = zerolog.InfoLevel.String()
	}
	if c.Trace == nil {
		c.Trace = &TraceBlock{}
	}
	if c.Trace.Path == "" {
		c.Trace.Path = DefaultTracePath
	}
	if len(c.Patterns) == 0 {
		c.Patterns = []string{DefaultPattern}
	}
}

// Load reads a config file, picking the decoder by extension. Missing
// settings get their defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, errors.Errorf("parsing HCL: %s", diags.Error())
		}
		ctx := &hcl.EvalContext{
			Variables: map[string]cty.Value{},
		}
		if diags := gohcl.DecodeBody(file.Body, ctx, &cfg); diags.HasErrors() {
			return nil, errors.Errorf("decoding HCL: %s", diags.Error())
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if dir, err := filepath.Abs(filepath.Dir(path)); err == nil {
		cfg.dir = dir
	}
	cfg.fill()
	return &cfg, nil
}

// Discover looks for a config file in dir and each of its parents.
func Discover(fs afero.Fs, dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if ok, err := afero.Exists(fs, path); err == nil && ok {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Log != nil {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			result = multierror.Append(result, errors.Errorf("log level %q: %w", c.Log.Level, err))
		}
	}
	if c.Trace != nil && c.Trace.Enabled && strings.TrimSpace(c.Trace.Path) == "" {
		result = multierror.Append(result, errors.New("trace is enabled but trace path is empty"))
	}
	for _, p := range c.Patterns {
		if !doublestar.ValidatePattern(p) {
			result = multierror.Append(result, errors.Errorf("invalid pattern %q", p))
		}
	}

	return result.ErrorOrNil()
}

// Level is the configured log level, or info when it does not parse.
func (c *Config) Level() zerolog.Level {
	if c.Log == nil {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Dir is the directory of the loaded config file, empty for the defaults.
func (c *Config) Dir() string {
	return c.dir
}

// Matches reports whether path is one of the configured source files.
// Paths under the config file's directory are matched relative to it.
// Any other path matches when one of its trailing parts does, so
// "src/**/*.c" accepts /home/u/proj/src/a.c.
func (c *Config) Matches(path string) bool {
	if c.dir != "" && filepath.IsAbs(path) {
		if rel, err := filepath.Rel(c.dir, path); err == nil {
			rel = filepath.ToSlash(rel)
			if rel != ".." && !strings.HasPrefix(rel, "../") {
				return c.match(rel)
			}
		}
	}

	p := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
	for {
		if c.match(p) {
			return true
		}
		i := strings.IndexByte(p, '/')
		if i < 0 {
			return false
		}
		p = p[i+1:]
	}
}

func (c *Config) match(path string) bool {
	for _, pattern := range c.Patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

type ctxKey struct{}

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config attached by WithContext, or the defaults.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	return Default()
}
