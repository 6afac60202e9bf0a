package app

import "errors"

// Config holds the process-level settings an App is built from. File
// configuration is loaded from ConfigPaths; the remaining fields override
// what the files say when set.
type Config struct {
	ConfigPaths []string

	LogFormat string
	LogLevel  string

	// StrictNaming forces strict naming regardless of the files.
	StrictNaming bool
	// Startup overrides the startup view-model.
	Startup string
	// Lenient logs binding validation failures instead of failing
	// startup. Inspection commands use it to report every failure.
	Lenient bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	return &cfg, nil
}
