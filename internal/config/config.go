// Package config resolves guildtrack settings from built-in defaults, an
// optional YAML file, and the environment.
//
// The YAML file is checked against an embedded CUE schema before it is
// decoded, so unknown keys and out-of-range values are rejected with a
// position-free but field-qualified message. Command-line flags are applied
// by the caller after Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/guildtrack/internal/ledger"
)

// Defaults for a fresh checkout: the ledger next to the working directory
// and the fetcher built in place by cargo.
const (
	DefaultLedgerPath     = "data/guild_levels.csv"
	DefaultFetcherCommand = "sf_fetcher/target/release/sf_fetcher"
	DefaultFetchTimeout   = 5 * time.Minute
	DefaultTopN           = 10
)

// DefaultTrendWindows are the trend windows, in days, computed by a run.
var DefaultTrendWindows = []int{3, 7}

// Config is the resolved configuration of one invocation.
type Config struct {
	Ledger      LedgerConfig      `yaml:"ledger"`
	Acquisition AcquisitionConfig `yaml:"acquisition"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
}

// LedgerConfig locates the ledger.
type LedgerConfig struct {
	Path    string `yaml:"path"`
	Backend string `yaml:"backend"`
}

// AcquisitionConfig describes the external fetcher.
type AcquisitionConfig struct {
	Command string        `yaml:"command"`
	Args    []string      `yaml:"args"`
	Timeout time.Duration `yaml:"timeout"`

	// StrictLevels makes a non-integer level fail the whole fetch instead
	// of dropping the entry.
	StrictLevels bool `yaml:"strict_levels"`
}

// AnalysisConfig controls the reports printed by a run.
type AnalysisConfig struct {
	TrendWindows []int `yaml:"trend_windows"`
	TopN         int   `yaml:"top_n"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ledger: LedgerConfig{
			Path:    DefaultLedgerPath,
			Backend: ledger.BackendCSV,
		},
		Acquisition: AcquisitionConfig{
			Command: DefaultFetcherCommand,
			Timeout: DefaultFetchTimeout,
		},
		Analysis: AnalysisConfig{
			TrendWindows: append([]int(nil), DefaultTrendWindows...),
			TopN:         DefaultTopN,
		},
	}
}

// Load returns the defaults overlaid with the file at path (skipped when
// path is empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &Error{Path: path, Err: err}
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, &Error{Path: path, Err: err}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, &Error{Err: err}
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc) == 0 {
		return nil
	}

	if err := validateDocument(doc); err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Validate checks the fully resolved configuration, after flags have been
// applied.
func (c Config) Validate() error {
	var errs []error
	if c.Ledger.Path == "" {
		errs = append(errs, errors.New("ledger path is required"))
	}
	switch c.Ledger.Backend {
	case ledger.BackendCSV, ledger.BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown ledger backend %q (want %s or %s)",
			c.Ledger.Backend, ledger.BackendCSV, ledger.BackendSQLite))
	}
	if c.Acquisition.Timeout < 0 {
		errs = append(errs, fmt.Errorf("acquisition timeout %v is negative", c.Acquisition.Timeout))
	}
	for _, w := range c.Analysis.TrendWindows {
		if w < 1 {
			errs = append(errs, fmt.Errorf("trend window %d must be at least 1 day", w))
		}
	}
	if c.Analysis.TopN < 0 {
		errs = append(errs, fmt.Errorf("top_n %d is negative", c.Analysis.TopN))
	}
	if len(errs) > 0 {
		return &Error{Err: errors.Join(errs...)}
	}
	return nil
}

// Error reports an unusable configuration.
type Error struct {
	Path string // config file, empty for environment or resolved values
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is or wraps a config *Error.
func IsConfigError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr)
}
