// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/config"
	"github.com/katalvlaran/lvrank/rank"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultPaintingsDir, cfg.PaintingsDir)
	assert.Equal(t, []string{".jpg"}, cfg.Extensions)
	assert.Equal(t, 0.05, cfg.Threshold)
	assert.Equal(t, rank.BackendGonum, cfg.Backend)
	assert.Equal(t, "painting_ranks.png", cfg.HistogramPath)
	assert.Empty(t, cfg.MetricsPath)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestParse_EmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_OverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Parse([]byte(`
threshold: 0.1
backend: jacobi
extensions: [".jpg", ".png"]
workers: 3
`))
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Threshold)
	assert.Equal(t, rank.BackendJacobi, cfg.Backend)
	assert.Equal(t, []string{".jpg", ".png"}, cfg.Extensions)
	assert.Equal(t, 3, cfg.EffectiveWorkers())
	assert.Equal(t, config.DefaultPaintingsDir, cfg.PaintingsDir, "untouched key keeps default")
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("treshold: 0.1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero threshold", func(c *config.Config) { c.Threshold = 0 }},
		{"threshold above one", func(c *config.Config) { c.Threshold = 1.5 }},
		{"unknown backend", func(c *config.Config) { c.Backend = "lapack" }},
		{"negative workers", func(c *config.Config) { c.Workers = -1 }},
		{"negative max_dim", func(c *config.Config) { c.MaxDim = -2 }},
		{"no extensions", func(c *config.Config) { c.Extensions = nil }},
		{"blank extension", func(c *config.Config) { c.Extensions = []string{""} }},
		{"no histogram path", func(c *config.Config) { c.HistogramPath = "" }},
		{"no paintings dir", func(c *config.Config) { c.PaintingsDir = "" }},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "lapack"
	cfg.Workers = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, rank.ErrUnknownBackend)
	assert.Contains(t, err.Error(), "workers -1")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_dim: 256\nlog_level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.MaxDim)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEffectiveWorkers_ZeroMeansNumCPU(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, runtime.NumCPU(), cfg.EffectiveWorkers())
}

func TestEstimator_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Threshold = 0.2
	cfg.Backend = "Jacobi"

	est, err := cfg.Estimator()
	require.NoError(t, err)
	assert.Equal(t, 0.2, est.Threshold())
	assert.Equal(t, rank.BackendJacobi, est.Backend())

	cfg.Backend = "nope"
	_, err = cfg.Estimator()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
