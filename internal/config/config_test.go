package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "ats.yaml", `
job_title: Registered Nurse
format: markdown
strict_schema: true
concurrency: 8
pdf:
  timeout: 45s
  landscape: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Registered Nurse", cfg.JobTitle)
	assert.Equal(t, "markdown", cfg.Format)
	assert.True(t, cfg.StrictSchema)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 45*time.Second, cfg.PDF.Timeout)
	assert.True(t, cfg.PDF.Landscape)
	assert.InDelta(t, 8.5, cfg.PDF.PaperWidth, 0.001, "unset keys keep their defaults")
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "ats.json", `{"format": "JSON", "log_format": "json"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "ats.yaml", "log_level: warn\nconcurrency: 2\n")
	t.Setenv("ATS_LOG_LEVEL", "debug")
	t.Setenv("ATS_PDF_TIMEOUT", "10s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.PDF.Timeout)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/ats.yaml")

	assert.Nil(t, cfg)
	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValue(t *testing.T) {
	path := writeConfig(t, "ats.yaml", "format: pdf\n")

	_, err := Load(path)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "format", cfgErr.Key)
	assert.Contains(t, err.Error(), "must be one of [text json markdown]")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"defaults", func(*Config) {}, ""},
		{"concurrency zero", func(c *Config) { c.Concurrency = 0 }, "concurrency"},
		{"concurrency too high", func(c *Config) { c.Concurrency = 65 }, "concurrency"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }, "cache_size"},
		{"zero pdf timeout", func(c *Config) { c.PDF.Timeout = 0 }, "pdf.timeout"},
		{"negative paper width", func(c *Config) { c.PDF.PaperWidth = -1 }, "pdf.paper_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantKey, cfgErr.Key)
		})
	}
}
