package model

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Theme is the color scheme of the view.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Config holds the application configuration
type Config struct {
	// Is24Hour selects the 24-hour clock format instead of 12-hour with AM/PM
	Is24Hour bool

	// Theme is the initial color scheme
	Theme Theme

	// Locale names the locale used for the long date (e.g. "en", "fr")
	Locale string

	// AltScreen runs the view in the terminal's alternate screen buffer
	AltScreen bool

	// LogFile is where logs are written; empty discards them
	LogFile string

	// LogLevel is one of debug, info, warn, error
	LogLevel string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Is24Hour:  false,
		Theme:     ThemeDark,
		Locale:    "en",
		AltScreen: true,
		LogLevel:  "info",
	}
}

// ConfigError reports an invalid value in the config file.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config value %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig reads an INI file on top of DefaultConfig. A missing file
// yields the defaults.
//
//	[display]
//	24h = true
//	theme = light
//	locale = en
//	alt_screen = false
//
//	[log]
//	file = /tmp/tickr.log
//	level = debug
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := applyDisplay(&cfg, file.Section("display")); err != nil {
		return cfg, err
	}

	applyLog(&cfg, file.Section("log"))

	return cfg, nil
}

func applyDisplay(cfg *Config, sec *ini.Section) error {
	if sec.HasKey("24h") {
		key := sec.Key("24h")

		v, err := key.Bool()
		if err != nil {
			return &ConfigError{Key: "display.24h", Value: key.String(), Err: err}
		}

		cfg.Is24Hour = v
	}

	if sec.HasKey("theme") {
		key := sec.Key("theme")

		theme, err := ParseTheme(key.String())
		if err != nil {
			return &ConfigError{Key: "display.theme", Value: key.String(), Err: err}
		}

		cfg.Theme = theme
	}

	if sec.HasKey("locale") {
		if v := strings.TrimSpace(sec.Key("locale").String()); v != "" {
			cfg.Locale = v
		}
	}

	if sec.HasKey("alt_screen") {
		key := sec.Key("alt_screen")

		v, err := key.Bool()
		if err != nil {
			return &ConfigError{Key: "display.alt_screen", Value: key.String(), Err: err}
		}

		cfg.AltScreen = v
	}

	return nil
}

func applyLog(cfg *Config, sec *ini.Section) {
	if sec.HasKey("file") {
		cfg.LogFile = strings.TrimSpace(sec.Key("file").String())
	}

	if sec.HasKey("level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(sec.Key("level").String()))
	}
}
