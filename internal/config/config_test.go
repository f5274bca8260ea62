package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/terminput/internal/input/key"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Mouse || !cfg.BracketedPaste || !cfg.FocusEvents {
		t.Errorf("defaults should enable all reporting modes: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.QuitKey != "C-q" {
		t.Errorf("QuitKey = %q, want C-q", cfg.QuitKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminput.toml")
	data := []byte(`
mouse = false
bracketed_paste = true
max_pending = 8192
esc_timeout_ms = 25
log_level = "debug"
quit_key = "C-c"
transcript = "/tmp/events.jsonl"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mouse {
		t.Error("mouse should be disabled")
	}
	if cfg.MaxPending != 8192 {
		t.Errorf("MaxPending = %d, want 8192", cfg.MaxPending)
	}
	if cfg.EscTimeout() != 25*time.Millisecond {
		t.Errorf("EscTimeout = %v, want 25ms", cfg.EscTimeout())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Transcript != "/tmp/events.jsonl" {
		t.Errorf("Transcript = %q", cfg.Transcript)
	}

	want := key.Event{Key: key.KeyRune, Rune: 'c', Modifiers: key.ModCtrl}
	got, ok := cfg.QuitEvent()
	if !ok || !got.Equal(want) {
		t.Errorf("QuitEvent = %v, %v; want %v", got, ok, want)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("mouse = {"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load = %v, want ErrInvalidConfig", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminput.toml")
	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TERMINPUT_MOUSE", "false")
	t.Setenv("TERMINPUT_LOG_LEVEL", "error")
	t.Setenv("TERMINPUT_MAX_PENDING", "1024")
	t.Setenv("TERMINPUT_QUIT_KEY", "C-d")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mouse {
		t.Error("env should disable mouse")
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, env should win over file", cfg.LogLevel)
	}
	if cfg.MaxPending != 1024 {
		t.Errorf("MaxPending = %d, want 1024", cfg.MaxPending)
	}
	if cfg.QuitKey != "C-d" {
		t.Errorf("QuitKey = %q, want C-d", cfg.QuitKey)
	}
}

func TestEnvInvalidValue(t *testing.T) {
	t.Setenv("TERMINPUT_MOUSE", "yes-please")

	_, err := Load("")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, false},
		{"negative max pending", func(c *Config) { c.MaxPending = -1 }, false},
		{"bad quit key", func(c *Config) { c.QuitKey = "C-" }, false},
		{"empty quit key", func(c *Config) { c.QuitKey = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestEscTimeoutDisabled(t *testing.T) {
	cfg := Default()
	cfg.EscTimeoutMS = -1
	if cfg.EscTimeout() >= 0 {
		t.Errorf("EscTimeout = %v, want negative (disabled)", cfg.EscTimeout())
	}
}
