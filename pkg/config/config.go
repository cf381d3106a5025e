package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong.
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the human-oriented console encoder.
	DefaultLogFormat = "console"
)

// Config captures the knobs a logger tool accepts on its command line.
type Config struct {
	// Catch suppresses every intercepted event after logging it.
	Catch   bool
	Logging LoggingConfig
}

// LoggingConfig defines diagnostic log verbosity and formatting.
type LoggingConfig struct {
	Level  string
	Format string
}

// Default returns the configuration used when no flags are supplied.
func Default() Config {
	return Config{
		Catch: false,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate normalises the logging fields in place and reports invalid values.
func (c *Config) Validate() error {
	var errs []error
	level, err := NormalizeLogLevel(c.Logging.Level)
	if err != nil {
		errs = append(errs, err)
	} else {
		c.Logging.Level = level
	}
	format, err := NormalizeFormat(c.Logging.Format)
	if err != nil {
		errs = append(errs, err)
	} else {
		c.Logging.Format = format
	}
	return errors.Join(errs...)
}

// NormalizeLogLevel validates and canonicalizes log level identifiers.
func NormalizeLogLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return DefaultLogLevel, nil
	case "info":
		return "info", nil
	case "debug":
		return "debug", nil
	case "warn", "warning":
		return "warn", nil
	case "error":
		return "error", nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NormalizeFormat validates and canonicalizes logging format identifiers.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
		return DefaultLogFormat, nil
	case "json":
		return "json", nil
	case "console", "text":
		return "console", nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}
