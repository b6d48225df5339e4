// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrank/chart"
	"github.com/katalvlaran/lvrank/imageio"
	"github.com/katalvlaran/lvrank/rank"
)

// DefaultPaintingsDir is the directory scanned by a batch run.
const DefaultPaintingsDir = "piet_mondrian_painting_ranks/paintings"

// Config holds the batch settings.
type Config struct {
	PaintingsDir  string   `yaml:"paintings_dir"`
	Extensions    []string `yaml:"extensions"`
	Threshold     float64  `yaml:"threshold"`
	Backend       string   `yaml:"backend"`
	Workers       int      `yaml:"workers"` // 0 selects runtime.NumCPU()
	MaxDim        int      `yaml:"max_dim"` // 0 keeps native image size
	HistogramPath string   `yaml:"histogram_path"`
	MetricsPath   string   `yaml:"metrics_path"` // empty disables the textfile export
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the built-in settings: .jpg files in DefaultPaintingsDir, threshold 0.05, gonum backend.
func Default() Config {
	return Config{
		PaintingsDir:  DefaultPaintingsDir,
		Extensions:    imageio.DefaultExtensions(),
		Threshold:     rank.DefaultThreshold,
		Backend:       rank.BackendGonum,
		Workers:       0,
		MaxDim:        imageio.DefaultMaxDim,
		HistogramPath: chart.DefaultHistogramPath,
		LogLevel:      zerolog.LevelInfoValue,
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes YAML over Default and validates the result. An empty
// document yields Default.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if c.PaintingsDir == "" {
		errs = append(errs, errors.New("paintings_dir must not be empty"))
	}
	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("extensions must not be empty"))
	}
	for i, ext := range c.Extensions {
		if ext == "" {
			errs = append(errs, fmt.Errorf("extensions[%d] must not be empty", i))
		}
	}
	if !(c.Threshold > 0 && c.Threshold <= 1) {
		errs = append(errs, fmt.Errorf("threshold %v must be in (0, 1]", c.Threshold))
	}
	if _, err := rank.DecomposerByName(c.Backend); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must be >= 0", c.Workers))
	}
	if c.MaxDim < 0 {
		errs = append(errs, fmt.Errorf("max_dim %d must be >= 0", c.MaxDim))
	}
	if c.HistogramPath == "" {
		errs = append(errs, errors.New("histogram_path must not be empty"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// EffectiveWorkers resolves Workers == 0 to the number of CPUs.
func (c Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.NumCPU()
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// Estimator builds the rank estimator described by c. c must be valid.
func (c Config) Estimator() (*rank.Estimator, error) {
	d, err := rank.DecomposerByName(c.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.Threshold > 0 && c.Threshold <= 1) {
		return nil, fmt.Errorf("%w: threshold %v must be in (0, 1]", ErrInvalidConfig, c.Threshold)
	}

	return rank.NewEstimator(rank.WithThreshold(c.Threshold), rank.WithDecomposer(d)), nil
}

// DecodeOptions returns the imageio options described by c.
func (c Config) DecodeOptions() []imageio.Option {
	return []imageio.Option{imageio.WithMaxDim(max(c.MaxDim, 0))}
}
