// Package config loads ccx configuration.
//
// Sources, from lowest to highest precedence:
//  1. Defaults (see Default).
//  2. A YAML config file, if given.
//  3. A .env file (only for variables not already in the environment).
//  4. Environment variables prefixed with CCX_.
//
// Command line flags override all of these; that is done by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable (ex: CCX_CONTEXT_LENGTH).
const EnvPrefix = "CCX"

// Defaults.
const (
	DefaultContextLength = 20
	DefaultLogLevel      = "INFO"
	DefaultWeekendPolicy = WeekendPolicyAll
)

// Weekend surcharge policies for the shipping calculator.
const (
	WeekendPolicyAll           = "all"           // every weekend shipment is surcharged
	WeekendPolicyInternational = "international" // only International weekend shipments are surcharged
)

// Config holds all configuration. Fields have no envconfig defaults so that unset variables leave file and default values alone. Only CCX_-prefixed
// variables are read: a bare LOG_LEVEL belongs to some other program.
type Config struct {
	// ContextLength is the default number of unchanged characters shown around a difference.
	// Env: CCX_CONTEXT_LENGTH (default: 20)
	ContextLength int `split_words:"true" yaml:"context_length"`

	// LogFile is the file to append JSON logs to. Logging is disabled when empty.
	// Env: CCX_LOG_FILE
	LogFile string `split_words:"true" yaml:"log_file"`

	// LogLevel is DEBUG, INFO, WARN or ERROR.
	// Env: CCX_LOG_LEVEL (default: INFO)
	LogLevel string `split_words:"true" yaml:"log_level"`

	// RatesFile is a YAML shipping rate table. The built-in table is used when empty.
	// Env: CCX_RATES_FILE
	RatesFile string `split_words:"true" yaml:"rates_file"`

	// WeekendPolicy selects which shipments get the weekend surcharge: "all" or "international".
	// Env: CCX_WEEKEND_POLICY (default: all)
	WeekendPolicy string `split_words:"true" yaml:"weekend_policy"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ContextLength: DefaultContextLength,
		LogLevel:      DefaultLogLevel,
		WeekendPolicy: DefaultWeekendPolicy,
	}
}

// fillEmpty restores defaults for settings that were set to "" (ex: CCX_LOG_LEVEL=).
func (c *Config) fillEmpty() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.WeekendPolicy == "" {
		c.WeekendPolicy = DefaultWeekendPolicy
	}
}

// Validate reports invalid values.
func (c Config) Validate() error {
	var errs []error
	if c.ContextLength < 0 {
		errs = append(errs, fmt.Errorf("context length must not be negative, got %d", c.ContextLength))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch c.WeekendPolicy {
	case WeekendPolicyAll, WeekendPolicyInternational:
	default:
		errs = append(errs, fmt.Errorf("unknown weekend policy %q", c.WeekendPolicy))
	}
	return errors.Join(errs...)
}

// LoadOptions names the optional files Load reads.
type LoadOptions struct {
	ConfigFile string // YAML config file. Must exist if set.
	EnvFile    string // .env file. Defaults to ".env"; skipped if it does not exist.
}

// Load builds a Config from defaults, the config file, the .env file and the environment, then validates it.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if opts.ConfigFile != "" {
		if err := loadYAML(opts.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := LoadDotEnv(opts.EnvFile); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	cfg.fillEmpty()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}
