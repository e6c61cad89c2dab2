// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers a YAML file and environment variables on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxCardsPerBoard caps how many cards a single board may hold.
	MaxCardsPerBoard int `koanf:"max_cards_per_board"`

	// LongPressMS is the hold duration before a body press arms a drag.
	LongPressMS int `koanf:"long_press_ms"`

	// MovementSlop is the pointer travel, in layout units, that cancels a
	// pending long-press.
	MovementSlop float64 `koanf:"movement_slop"`

	// SlotHeight is the height of one card slot in layout units, used to
	// translate drag offsets into target indices.
	SlotHeight float64 `koanf:"slot_height"`

	// ShutdownTimeoutS bounds graceful HTTP shutdown.
	ShutdownTimeoutS int `koanf:"shutdown_timeout_s"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		MaxCardsPerBoard: 500,
		LongPressMS:      500,
		MovementSlop:     10,
		SlotHeight:       64,
		ShutdownTimeoutS: 30,
	}
}
