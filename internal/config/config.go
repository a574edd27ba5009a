// Package config resolves swatch settings from defaults, an optional .env
// file and SWATCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

// Environment variables read by WithEnvConfig.
const (
	EnvDebounceMS = "SWATCH_DEBOUNCE_MS"
	EnvFormat     = "SWATCH_FORMAT"
	EnvStrict     = "SWATCH_STRICT"
	EnvPreview    = "SWATCH_PREVIEW"
	EnvNoColor    = "NO_COLOR"
)

// Debounce delay bounds for the delayed channel.
const (
	DefaultDebounceDelay = 300 * time.Millisecond
	MaxDebounceDelay     = 1000 * time.Millisecond
	DebounceStep         = 50 * time.Millisecond
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Format selects how results are written.
type Format string

// Supported output formats.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formats lists the supported output formats in help order.
var Formats = []Format{FormatText, FormatJSON, FormatTable}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported format %q (supported: text, json, table)", ErrInvalidConfig, s)
}

// PreviewMode controls ANSI colour previews in text output.
type PreviewMode string

// Preview modes.
const (
	PreviewAuto   PreviewMode = "auto"
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// ParsePreviewMode validates a preview mode name (case-insensitive).
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch m := PreviewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PreviewAuto, PreviewAlways, PreviewNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unsupported preview mode %q (supported: auto, always, never)", ErrInvalidConfig, s)
	}
}

// Config holds resolved settings.
type Config struct {
	// DebounceDelay is applied to the delayed session channel.
	// Zero means changes are committed immediately.
	DebounceDelay time.Duration

	// Format is the default output format.
	Format Format

	// Strict rejects malformed hex input instead of treating it as black.
	Strict bool

	// Preview controls terminal colour blocks in text output.
	Preview PreviewMode
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DebounceDelay: DefaultDebounceDelay,
		Format:        FormatText,
		Strict:        true,
		Preview:       PreviewAuto,
	}
}

// ValidateDebounceDelay checks d is within [0, 1000ms] and a multiple of 50ms.
func ValidateDebounceDelay(d time.Duration) error {
	if d < 0 || d > MaxDebounceDelay {
		return fmt.Errorf("%w: debounce delay %s outside 0-%s", ErrInvalidConfig, d, MaxDebounceDelay)
	}
	if d%DebounceStep != 0 {
		return fmt.Errorf("%w: debounce delay %s is not a multiple of %s", ErrInvalidConfig, d, DebounceStep)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := ValidateDebounceDelay(c.DebounceDelay); err != nil {
		return err
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if _, err := ParsePreviewMode(string(c.Preview)); err != nil {
		return err
	}
	return nil
}

// Builder provides a fluent interface for resolving a Config.
type Builder struct {
	config  Config
	envFile string
	useEnv  bool
	logger  hclog.Logger
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		logger: hclog.NewNullLogger(),
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from SWATCH_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithEnvFile reads KEY=VALUE pairs from path. Non-empty values already
// present in the process environment take precedence. Implies WithEnvConfig.
func (b *Builder) WithEnvFile(path string) *Builder {
	b.envFile = path
	b.useEnv = true
	return b
}

// WithLogger sets the logger used to report where settings came from.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build resolves and validates the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		fileVals := map[string]string{}
		if b.envFile != "" {
			vals, err := godotenv.Read(b.envFile)
			if err != nil {
				return Config{}, fmt.Errorf("failed to read env file %s: %w", b.envFile, err)
			}
			fileVals = vals
			b.logger.Debug("loaded env file", "path", b.envFile, "keys", len(vals))
		}

		lookup := func(key string) (string, bool) {
			if v, ok := os.LookupEnv(key); ok && v != "" {
				return v, true
			}
			v, ok := fileVals[key]
			return v, ok
		}

		if err := b.applyEnv(&config, lookup); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (b *Builder) applyEnv(config *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDebounceMS); ok && v != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvDebounceMS, v)
		}
		config.DebounceDelay = time.Duration(ms) * time.Millisecond
		b.logger.Debug("config from env", "key", EnvDebounceMS, "value", config.DebounceDelay)
	}

	if v, ok := lookup(EnvFormat); ok && v != "" {
		f, err := ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		config.Format = f
		b.logger.Debug("config from env", "key", EnvFormat, "value", f)
	}

	if v, ok := lookup(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvStrict, v)
		}
		config.Strict = strict
		b.logger.Debug("config from env", "key", EnvStrict, "value", strict)
	}

	if v, ok := lookup(EnvPreview); ok && v != "" {
		m, err := ParsePreviewMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPreview, err)
		}
		config.Preview = m
		b.logger.Debug("config from env", "key", EnvPreview, "value", m)
	}

	// https://no-color.org: any non-empty value disables colour.
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		config.Preview = PreviewNever
		b.logger.Debug("config from env", "key", EnvNoColor, "value", PreviewNever)
	}

	return nil
}
