// Package log configures the logrus logger shared by the CLI and the parser.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Format selects the log line layout.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatText   Format = "text"
	FormatJSON   Format = "json"
)

const DefaultTimestampFormat = "20060102-150405.00"

// Configuration describes how the logger is built.
type Configuration struct {
	Format           Format
	Level            string
	DisableTimestamp bool
	TimestampFormat  string
	Output           io.Writer // defaults to os.Stderr
}

// DefaultConfiguration logs warnings and above in the pretty layout.
func DefaultConfiguration() Configuration {
	return Configuration{
		Format:          FormatPretty,
		Level:           "warn",
		TimestampFormat: DefaultTimestampFormat,
	}
}

// ValidFormats returns the list of valid log formats.
func ValidFormats() []string {
	return []string{string(FormatPretty), string(FormatText), string(FormatJSON)}
}

// ValidateFormat checks that format names a known log format.
// An empty string is valid and selects the pretty layout.
func ValidateFormat(format string) error {
	switch Format(strings.ToLower(format)) {
	case "", FormatPretty, FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid log format: %s (valid formats: %s)", format, strings.Join(ValidFormats(), ", "))
}

// ValidateLevel checks that level names a logrus level.
// An empty string is valid and selects the default level.
func ValidateLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := logrus.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}

// New builds a logger from the configuration.
func (c Configuration) New() (*logrus.Logger, error) {
	if err := ValidateFormat(string(c.Format)); err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if c.Output != nil {
		logger.SetOutput(c.Output)
	}

	tsFormat := c.TimestampFormat
	if tsFormat == "" {
		tsFormat = DefaultTimestampFormat
	}

	switch Format(strings.ToLower(string(c.Format))) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: c.DisableTimestamp,
			TimestampFormat:  tsFormat,
		})
	case FormatText:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: c.DisableTimestamp,
			TimestampFormat:  tsFormat,
			DisableSorting:   true,
			DisableColors:    true,
			FullTimestamp:    !c.DisableTimestamp,
		})
	default:
		logger.SetFormatter(&prefixed.TextFormatter{
			DisableTimestamp: c.DisableTimestamp,
			TimestampFormat:  tsFormat,
			ForceFormatting:  true,
			FullTimestamp:    true,
			DisableSorting:   true,
			DisableColors:    true,
		})
	}

	level := logrus.WarnLevel
	if c.Level != "" {
		parsed, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %s", c.Level)
		}
		level = parsed
	}
	logger.SetLevel(level)

	return logger, nil
}
