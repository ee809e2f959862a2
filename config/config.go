// Package config loads analysis settings from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Indicator names accepted in Analysis.Indicators.
const (
	Hypervolume     = "hypervolume"
	IGD             = "igd"
	IGDPlus         = "igd_plus"
	GD              = "gd"
	GDPlus          = "gd_plus"
	AvgHausdorff    = "avg_hausdorff"
	EpsilonAdditive = "epsilon_additive"
	EpsilonMult     = "epsilon_mult"
)

// AllIndicators lists every supported indicator name.
var AllIndicators = []string{Hypervolume, IGD, IGDPlus, GD, GDPlus, AvgHausdorff, EpsilonAdditive, EpsilonMult}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid analysis")

// Analysis describes one evaluation run.
type Analysis struct {
	// Maximise flags maximised objectives; one entry applies to all.
	Maximise []bool `yaml:"maximise"`
	// ReferencePoint bounds the hypervolume. Empty means the per-objective worst value of the data.
	ReferencePoint []float64 `yaml:"reference_point"`
	// ReferenceSet is a dataset file whose points form the reference front. Empty means
	// the nondominated union of all evaluated sets.
	ReferenceSet string `yaml:"reference_set"`
	// Indicators selects what to compute per set.
	Indicators []string `yaml:"indicators"`
	// HausdorffExponent is p for avg_hausdorff.
	HausdorffExponent float64         `yaml:"hausdorff_exponent"`
	Normalise         NormaliseConfig `yaml:"normalise"`
	EAF               EAFConfig       `yaml:"eaf"`
	// Parallelism bounds the number of sets evaluated concurrently. Zero means GOMAXPROCS.
	Parallelism int           `yaml:"parallelism"`
	Logging     LoggingConfig `yaml:"logging"`
}

// NormaliseConfig rescales objectives before indicators are computed.
type NormaliseConfig struct {
	Enabled bool      `yaml:"enabled"`
	Range   []float64 `yaml:"range"`
	Lower   []float64 `yaml:"lower"`
	Upper   []float64 `yaml:"upper"`
}

// EAFConfig controls the attainment-surface section of a report.
type EAFConfig struct {
	Enabled bool `yaml:"enabled"`
	// Percentiles selects the surfaces. Empty means every level.
	Percentiles []float64 `yaml:"percentiles"`
}

// LoggingConfig selects the log level and format ("text" or "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel parses Level, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Default returns the settings used for keys a document leaves out.
func Default() *Analysis {
	return &Analysis{
		Indicators:        []string{Hypervolume, IGDPlus, EpsilonAdditive},
		HausdorffExponent: 1,
		Normalise: NormaliseConfig{
			Range: []float64{0, 1},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (if not empty), applies MOOGO_* environment overrides and validates.
func Load(path string) (*Analysis, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (*Analysis, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Analysis) {
	if v := os.Getenv("MOOGO_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parallelism = n
		}
	}
	if v := os.Getenv("MOOGO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MOOGO_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("MOOGO_REFERENCE_SET"); v != "" {
		cfg.ReferenceSet = v
	}
}

// Validate checks the settings that do not depend on the data.
func (a *Analysis) Validate() error {
	for _, name := range a.Indicators {
		if !slices.Contains(AllIndicators, name) {
			return fmt.Errorf("%w: unknown indicator %q (want one of %s)", ErrInvalid, name, strings.Join(AllIndicators, ", "))
		}
	}
	if a.HausdorffExponent <= 0 || math.IsNaN(a.HausdorffExponent) {
		return fmt.Errorf("%w: hausdorff_exponent must be positive, got %g", ErrInvalid, a.HausdorffExponent)
	}
	if a.Normalise.Enabled && len(a.Normalise.Range) != 2 {
		return fmt.Errorf("%w: normalise.range needs two values, got %d", ErrInvalid, len(a.Normalise.Range))
	}
	for _, p := range a.EAF.Percentiles {
		if p < 0 || p > 100 || math.IsNaN(p) {
			return fmt.Errorf("%w: eaf percentile %g outside [0, 100]", ErrInvalid, p)
		}
	}
	if a.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism must not be negative", ErrInvalid)
	}
	switch a.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, a.Logging.Format)
	}
	return nil
}

// Wants reports whether the named indicator is selected.
func (a *Analysis) Wants(indicator string) bool {
	return slices.Contains(a.Indicators, indicator)
}
