// Package config resolves benchdash settings from defaults, an optional YAML
// file, BENCHDASH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "BENCHDASH"

// Keys understood by Load.
const (
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyAltScreen    = "ui.alt_screen"
	KeyTraceEnabled = "trace.enabled"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel  log.Level
	LogFile   string // empty discards logs
	AltScreen bool
	Tracing   bool // export redraw spans when an OTLP endpoint is configured
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyTraceEnabled, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	return nil
}

// Load resolves the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New("config: nil viper instance")
	}
	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	return Config{
		LogLevel:  level,
		LogFile:   v.GetString(KeyLogFile),
		AltScreen: v.GetBool(KeyAltScreen),
		Tracing:   v.GetBool(KeyTraceEnabled),
	}, nil
}
