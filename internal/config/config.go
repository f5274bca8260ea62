package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/terminput/internal/input/key"
)

// Config errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds all terminput settings.
type Config struct {
	// Mouse enables mouse reporting (press, release, drag, wheel).
	Mouse bool `toml:"mouse"`

	// BracketedPaste enables bracketed paste mode.
	BracketedPaste bool `toml:"bracketed_paste"`

	// FocusEvents enables focus in/out reporting.
	FocusEvents bool `toml:"focus_events"`

	// MaxPending caps the bytes buffered for an unterminated sequence
	// before the decoder resynchronizes. Zero keeps the decoder default.
	MaxPending int `toml:"max_pending"`

	// EscTimeoutMS is the lone-ESC flush timeout in milliseconds.
	// Zero keeps the source default; negative disables flushing.
	EscTimeoutMS int `toml:"esc_timeout_ms"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// QuitKey names the key that ends the session, in key-spec form
	// (for example "C-q" or "C-S-x").
	QuitKey string `toml:"quit_key"`

	// Transcript is a path to append a JSONL event transcript to.
	// Empty disables capture.
	Transcript string `toml:"transcript"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mouse:          true,
		BracketedPaste: true,
		FocusEvents:    true,
		LogLevel:       "info",
		QuitKey:        "C-q",
	}
}

// Load builds a configuration from defaults, the TOML file at path (if
// path is non-empty and the file exists), and TERMINPUT_* environment
// variables. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides settings from TERMINPUT_* environment variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("TERMINPUT_MOUSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TERMINPUT_MOUSE=%q", ErrInvalidConfig, v)
		}
		c.Mouse = b
	}
	if v, ok := os.LookupEnv("TERMINPUT_BRACKETED_PASTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TERMINPUT_BRACKETED_PASTE=%q", ErrInvalidConfig, v)
		}
		c.BracketedPaste = b
	}
	if v, ok := os.LookupEnv("TERMINPUT_FOCUS_EVENTS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TERMINPUT_FOCUS_EVENTS=%q", ErrInvalidConfig, v)
		}
		c.FocusEvents = b
	}
	if v, ok := os.LookupEnv("TERMINPUT_MAX_PENDING"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TERMINPUT_MAX_PENDING=%q", ErrInvalidConfig, v)
		}
		c.MaxPending = n
	}
	if v, ok := os.LookupEnv("TERMINPUT_ESC_TIMEOUT_MS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TERMINPUT_ESC_TIMEOUT_MS=%q", ErrInvalidConfig, v)
		}
		c.EscTimeoutMS = n
	}
	if v, ok := os.LookupEnv("TERMINPUT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("TERMINPUT_QUIT_KEY"); ok {
		c.QuitKey = v
	}
	if v, ok := os.LookupEnv("TERMINPUT_TRANSCRIPT"); ok {
		c.Transcript = v
	}
	return nil
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.MaxPending < 0 {
		return fmt.Errorf("%w: max_pending %d", ErrInvalidConfig, c.MaxPending)
	}
	if c.QuitKey != "" {
		if _, err := key.Parse(c.QuitKey); err != nil {
			return fmt.Errorf("%w: quit_key %q: %v", ErrInvalidConfig, c.QuitKey, err)
		}
	}
	return nil
}

// QuitEvent returns the parsed quit key. Call Validate first; an
// unparseable spec here returns a zero event and false.
func (c *Config) QuitEvent() (key.Event, bool) {
	if c.QuitKey == "" {
		return key.Event{}, false
	}
	ev, err := key.Parse(c.QuitKey)
	if err != nil {
		return key.Event{}, false
	}
	return ev, true
}

// EscTimeout converts the millisecond setting to a duration. Zero means
// "use the source default".
func (c *Config) EscTimeout() time.Duration {
	if c.EscTimeoutMS < 0 {
		return -1
	}
	return time.Duration(c.EscTimeoutMS) * time.Millisecond
}
