// Package config provides configuration management for shortcode.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/shortcode-cli/internal/log"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Environment variables that override the config file.
const (
	EnvPrecise         = "SHORTCODE_PRECISE"
	EnvStrict          = "SHORTCODE_STRICT"
	EnvSelfClosingTags = "SHORTCODE_SELF_CLOSING_TAGS"
	EnvOutput          = "SHORTCODE_OUTPUT"
	EnvLogLevel        = "SHORTCODE_LOG_LEVEL"
	EnvLogFormat       = "SHORTCODE_LOG_FORMAT"
)

// EnvVars lists every environment variable read by LoadFromEnv.
var EnvVars = []string{EnvPrecise, EnvStrict, EnvSelfClosingTags, EnvOutput, EnvLogLevel, EnvLogFormat}

// Config holds the shortcode configuration.
//
// Unset booleans leave the per-command defaults in place: parse is strict and
// fast, extract/tree/text/format/render are lenient and precise.
type Config struct {
	Precise         *bool    `yaml:"precise,omitempty"`
	Strict          *bool    `yaml:"strict,omitempty"`
	SelfClosingTags []string `yaml:"self_closing_tags,omitempty"`
	MaxDepth        int      `yaml:"max_depth,omitempty"`
	OutputFormat    string   `yaml:"output_format,omitempty"`
	Markdown        *bool    `yaml:"markdown,omitempty"`
	Sanitize        bool     `yaml:"sanitize,omitempty"`
	LogLevel        string   `yaml:"log_level,omitempty"`
	LogFormat       string   `yaml:"log_format,omitempty"`
}

// Validate checks that all fields hold valid values.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return err
	}
	if err := log.ValidateLevel(c.LogLevel); err != nil {
		return err
	}
	if err := log.ValidateFormat(c.LogFormat); err != nil {
		return err
	}
	for _, name := range c.SelfClosingTags {
		if strings.ContainsAny(name, " []/") {
			return fmt.Errorf("invalid self-closing tag name: %q", name)
		}
	}
	return nil
}

// ParseOptions applies the configured parser settings over base.
// A nil base starts from shortcode.DefaultOptions.
func (c *Config) ParseOptions(base *shortcode.Options) *shortcode.Options {
	if base == nil {
		base = shortcode.DefaultOptions()
	}
	opts := base.Clone()
	if c.Precise != nil {
		opts.Precise = *c.Precise
	}
	if c.Strict != nil {
		opts.Strict = *c.Strict
	}
	if len(c.SelfClosingTags) > 0 {
		opts.SelfClosingTags = lo.Uniq(append(opts.SelfClosingTags, c.SelfClosingTags...))
	}
	if c.MaxDepth > 0 {
		opts.MaxDepth = c.MaxDepth
	}
	return opts
}

// LogConfiguration returns the logger configuration for the configured level and format.
func (c *Config) LogConfiguration() log.Configuration {
	lc := log.DefaultConfiguration()
	if c.LogLevel != "" {
		lc.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		lc.Format = log.Format(c.LogFormat)
	}
	return lc
}

// RenderMarkdown reports whether text between tags is rendered as markdown.
func (c *Config) RenderMarkdown() bool {
	return lo.FromPtrOr(c.Markdown, true)
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Booleans that do not parse are ignored.
func (c *Config) LoadFromEnv() {
	if v, ok := getEnvBool(EnvPrecise); ok {
		c.Precise = &v
	}
	if v, ok := getEnvBool(EnvStrict); ok {
		c.Strict = &v
	}
	if tags := os.Getenv(EnvSelfClosingTags); tags != "" {
		c.SelfClosingTags = SplitList(tags)
	}
	if output := getEnvWithFallback(EnvOutput, "SHORTCODE_OUTPUT_FORMAT"); output != "" {
		c.OutputFormat = output
	}
	if level := getEnvWithFallback(EnvLogLevel, "LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.LogFormat = format
	}
}

// SplitList splits a comma-separated list, trimming entries and dropping empty ones.
func SplitList(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Uniq(lo.Compact(parts))
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

func getEnvBool(name string) (bool, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "shortcode", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".shortcode", "config.yml")
	}

	return filepath.Join(home, ".config", "shortcode", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error; a file that fails to parse is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
