package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdrpinto/search"
)

// Config holds all configuration for the statespace command
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Search configuration
	Search SearchConfig `mapstructure:"search"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text, json
}

// SearchConfig selects the domain, the strategy and how results are reported
type SearchConfig struct {
	Domain    string `mapstructure:"domain"`    // grid, parking
	Strategy  string `mapstructure:"strategy"`  // see search.ParseStrategy
	Heuristic string `mapstructure:"heuristic"` // default, zero
	Output    string `mapstructure:"output"`    // text, yaml
	Trace     bool   `mapstructure:"trace"`
	// Timeout bounds a single search; zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Known values for the enumerated settings.
var (
	Domains    = []string{"grid", "parking"}
	Heuristics = []string{"default", "zero"}
	Outputs    = []string{"text", "yaml"}
	LogFormats = []string{"text", "json"}
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("search.domain", "grid")
	v.SetDefault("search.strategy", string(search.StrategyAStar))
	v.SetDefault("search.heuristic", "default")
	v.SetDefault("search.output", "text")
	v.SetDefault("search.trace", false)
	v.SetDefault("search.timeout", "0s")
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown enumerated values.
func (c *Config) Validate() error {
	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		return err
	}
	if err := oneOf("search.domain", c.Search.Domain, Domains); err != nil {
		return err
	}
	if err := oneOf("search.heuristic", c.Search.Heuristic, Heuristics); err != nil {
		return err
	}
	if err := oneOf("search.output", c.Search.Output, Outputs); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, LogFormats); err != nil {
		return err
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("invalid search.timeout %s: must not be negative", c.Search.Timeout)
	}
	return nil
}

// Strategy returns the parsed search strategy.
func (c *Config) Strategy() search.Strategy {
	s, _ := search.ParseStrategy(c.Search.Strategy)
	return s
}

// NewLogger builds the logger described by the log section, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log.level %q: %w", s, err)
	}
	return level, nil
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (want one of %s)", key, value, strings.Join(allowed, ", "))
}
