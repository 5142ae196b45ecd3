package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "good-importer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.Strict)
	assert.Equal(t, SummaryASCII, cfg.Summary)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
workers: 6
strict: true
pretty: true
log_level: debug
max_skip_ratio: 0.2
summary: markdown
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Workers:      6,
		Strict:       true,
		Pretty:       true,
		LogLevel:     "debug",
		MaxSkipRatio: 0.2,
		Summary:      SummaryMarkdown,
	}, cfg)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "strict: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, SummaryASCII, cfg.Summary)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "workers: [1, 2\n"))
	assert.ErrorContains(t, err, "parse")

	cases := map[string]string{
		"negative workers": "workers: -1\n",
		"ratio above one":  "max_skip_ratio: 1.5\n",
		"unknown summary":  "summary: html\n",
		"bad log level":    "log_level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
