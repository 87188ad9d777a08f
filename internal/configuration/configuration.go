// Package configuration implements reading of the optional Unix-type
// configuration file into a [Config].
package configuration

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	SettingLogLevel    = "FIW_LOG_LEVEL"
	SettingProgressBar = "FIW_PROGRESS_BAR"
	SettingDigest      = "FIW_DIGEST"
	SettingStrict      = "FIW_STRICT"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Config is the principal structure holding the program configuration. None
// of the settings change how the data itself is transferred.
type Config struct {
	LogLevel    slog.Level
	ProgressBar bool
	Digest      bool
	Strict      bool
}

// Default returns the [Config] that is used without a configuration file.
func Default() Config {
	return Config{
		LogLevel: slog.LevelWarn,
	}
}

// Handler is the principal implementation for reading configuration files.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// Load reads the configuration file at path on top of [Default]. An empty
// path returns the defaults without reading anything.
func (c *Handler) Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	envMap, err := c.genericHandler.Read(path)
	if err != nil {
		return cfg, fmt.Errorf("(config) failed to read %s: %w", path, err)
	}

	if value := c.MapKeyToString(envMap, SettingLogLevel); value != "" {
		level, err := ParseLogLevel(value)
		if err != nil {
			return cfg, fmt.Errorf("(config) %s: %w", SettingLogLevel, err)
		}
		cfg.LogLevel = level
	}

	cfg.ProgressBar = c.MapKeyToBool(envMap, SettingProgressBar)
	cfg.Digest = c.MapKeyToBool(envMap, SettingDigest)
	cfg.Strict = c.MapKeyToBool(envMap, SettingStrict)

	return cfg, nil
}

// MapKeyToString returns the value for key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns true when the value for key is one of "yes", "true"
// or "1", ignoring case.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.MapKeyToString(envMap, key))) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

// ParseLogLevel converts a level name like "debug" or "WARN" into a
// [slog.Level].
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}

	return level, nil
}
