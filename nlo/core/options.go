package core

import "github.com/sgostarter/i/l"

// Config carries settings shared by the computational packages.
type Config struct {
	// Logger receives debug diagnostics. Never nil after ApplyOptions.
	Logger l.Wrapper
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a config with a no-op logger.
func DefaultConfig() Config {
	return Config{
		Logger: l.NewNopLoggerWrapper(),
	}
}

// WithLogger injects a logger. A nil logger keeps the default.
func WithLogger(logger l.Wrapper) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
