package config_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unnamed42/chromatica.nvim/pkg/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		content     string
		expectError bool
		validate    func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "yaml",
			path: "/p/.chromatica.yaml",
			content: `
log:
  level: debug
  color: true
trace:
  enabled: true
patterns:
  - "src/**/*.c"
`,
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, zerolog.DebugLevel, cfg.Level())
				assert.True(t, cfg.Log.Color)
				assert.True(t, cfg.Trace.Enabled)
				assert.Equal(t, config.DefaultTracePath, cfg.Trace.Path)
				assert.Equal(t, []string{"src/**/*.c"}, cfg.Patterns)
			},
		},
		{
			name:    "empty_yaml_gets_defaults",
			path:    "/p/.chromatica.yml",
			content: "",
			validate: func(t *testing.T, cfg *config.Config) {
				def := config.Default()
				assert.Equal(t, def.Log, cfg.Log)
				assert.Equal(t, def.Trace, cfg.Trace)
				assert.Equal(t, def.Patterns, cfg.Patterns)
				assert.Equal(t, "/p", cfg.Dir())
			},
		},
		{
			name:        "unknown_yaml_field",
			path:        "/p/.chromatica.yaml",
			content:     "colour: red\n",
			expectError: true,
		},
		{
			name: "hcl",
			path: "/p/.chromatica.hcl",
			content: `
log {
  level = "trace"
}
trace {
  enabled = true
  path    = "/tmp/ast.log"
}
`,
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, zerolog.TraceLevel, cfg.Level())
				assert.Equal(t, "/tmp/ast.log", cfg.Trace.Path)
				assert.Equal(t, []string{config.DefaultPattern}, cfg.Patterns)
			},
		},
		{
			name:        "invalid_hcl_syntax",
			path:        "/p/.chromatica.hcl",
			content:     "log {\n  level = debug\"\n}\n",
			expectError: true,
		},
		{
			name:        "unsupported_extension",
			path:        "/p/chromatica.toml",
			content:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0o644))

			cfg, err := config.Load(fs, tt.path)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(afero.NewMemMapFs(), "/nope/.chromatica.yaml")
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/.chromatica.hcl", []byte(""), 0o644))
	require.NoError(t, fs.MkdirAll("/repo/src/deep", 0o755))

	path, ok := config.Discover(fs, "/repo/src/deep")
	require.True(t, ok)
	assert.Equal(t, "/repo/.chromatica.hcl", path)

	_, ok = config.Discover(fs, "/elsewhere")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, config.Default().Validate())

	cfg := config.Default()
	cfg.Log.Level = "loud"
	cfg.Trace.Enabled = true
	cfg.Trace.Path = " "
	cfg.Patterns = []string{"src/[a-"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "trace path is empty")
	assert.Contains(t, err.Error(), "src/[a-")
}

func TestMatches(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "c_file", path: "main.c", want: true},
		{name: "nested_header", path: "include/x/y.hpp", want: true},
		{name: "absolute", path: "/src/lib/a.cc", want: true},
		{name: "objc", path: "ui/view.mm", want: true},
		{name: "go_file", path: "main.go", want: false},
		{name: "no_extension", path: "Makefile", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Matches(tt.path))
		})
	}
}

func TestMatchesRelativePatterns(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/.chromatica.yaml", []byte("patterns: [\"src/**/*.c\"]\n"), 0o644))
	loaded, err := config.Load(fs, "/proj/.chromatica.yaml")
	require.NoError(t, err)

	bare := config.Default()
	bare.Patterns = []string{"src/**/*.c"}

	tests := []struct {
		name string
		cfg  *config.Config
		path string
		want bool
	}{
		{name: "under_config_dir", cfg: loaded, path: "/proj/src/a/b.c", want: true},
		{name: "anchored_to_config_dir", cfg: loaded, path: "/proj/lib/src/b.c", want: false},
		{name: "wrong_extension", cfg: loaded, path: "/proj/src/a.h", want: false},
		{name: "outside_config_dir", cfg: loaded, path: "/other/src/c.c", want: true},
		{name: "absolute_glob_result", cfg: bare, path: "/home/u/proj/src/x/a.c", want: true},
		{name: "absolute_elsewhere", cfg: bare, path: "/home/u/proj/lib/a.c", want: false},
		{name: "relative", cfg: bare, path: "src/a.c", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Matches(tt.path))
		})
	}
}

func TestContext(t *testing.T) {
	assert.Equal(t, config.Default(), config.FromContext(context.Background()))

	cfg := config.Default()
	cfg.Trace.Enabled = true
	ctx := config.WithContext(context.Background(), cfg)
	assert.Same(t, cfg, config.FromContext(ctx))
}
