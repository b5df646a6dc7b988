package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/expect/internal/check"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 6, cfg.MaxFields)
	assert.Equal(t, 10, cfg.EnumProbeLimit)
	assert.Equal(t, "base", cfg.PathStyle)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty input keeps defaults",
			yaml: "",
			want: Default(),
		},
		{
			name: "partial override",
			yaml: "max_fields: 0\n",
			want: func() Config { c := Default(); c.MaxFields = 0; return c }(),
		},
		{
			name: "all keys",
			yaml: "max_fields: 12\nenum_probe_limit: 32\npath_style: full\nlog_level: debug\nlog_format: json\n",
			want: Config{MaxFields: 12, EnumProbeLimit: 32, PathStyle: "full", LogLevel: "debug", LogFormat: "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("max_feilds: 3\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_feilds")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("max_fields: [\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"negative field cap", "max_fields: -1\n", "max_fields"},
		{"negative probe limit", "enum_probe_limit: -3\n", "enum_probe_limit"},
		{"unknown path style", "path_style: relative\n", "path_style"},
		{"unknown log level", "log_level: trace\n", "log_level"},
		{"unknown log format", "log_format: xml\n", "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr), "got %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("path_style: full\n"), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "full", cfg.PathStyle)
	assert.Equal(t, 6, cfg.MaxFields)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCheckOptions(t *testing.T) {
	cfg := Config{MaxFields: 3, EnumProbeLimit: 20, PathStyle: "full"}

	assert.Equal(t, check.Options{MaxFields: 3, EnumProbeLimit: 20, PathStyle: check.PathFull}, cfg.CheckOptions())
}

func TestLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, Config{LogLevel: name}.Level())
		})
	}
}

func TestError(t *testing.T) {
	assert.Equal(t, "max_fields: out of bound", (&Error{Field: "max_fields", Message: "out of bound"}).Error())
	assert.Equal(t, "broken", (&Error{Message: "broken"}).Error())
}
