// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's sentinel kinds.
package config

// Default configuration values.
const (
	defaultAddr           = ":8086"
	defaultLogLevel       = "info"
	defaultMaxUploadBytes = 32 << 20 // 32 MiB
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8086".
	Addr string `koanf:"addr"`

	// MaxUploadBytes caps the size of an uploaded document.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// MaxLookbackLines bounds the backward scan for a person's name when a
	// boundary marker is found. Zero means scan to the start of the page.
	MaxLookbackLines int `koanf:"max_lookback_lines"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         defaultLogLevel,
		Addr:             defaultAddr,
		MaxUploadBytes:   defaultMaxUploadBytes,
		MaxLookbackLines: 0,
	}
}
