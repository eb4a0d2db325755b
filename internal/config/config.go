// Package config holds the environment driven settings of the hamcrest packages.
//
// Every setting is read from an environment variable with the HAMCREST_ prefix:
//
//	HAMCREST_LOG_LEVEL      zerolog level name used by the assertion helpers (default: disabled)
//	HAMCREST_EXPORT_DEPTH   max nesting depth of exported composite values (default: 3)
//	HAMCREST_EXPORT_LENGTH  max rune count of a shortened string export (default: 40)
package config

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "HAMCREST"

const (
	keyLogLevel     = "log_level"
	keyExportDepth  = "export_depth"
	keyExportLength = "export_length"
)

const (
	DefaultLogLevel     = "disabled"
	DefaultExportDepth  = 3
	DefaultExportLength = 40
)

type Config struct {
	LogLevel zerolog.Level
	// ExportDepth limits how deep composite values are rendered in failure messages.
	ExportDepth int
	// ExportLength limits the length of shortened string exports.
	ExportLength int
}

// Load reads the configuration from the environment.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyExportDepth, DefaultExportDepth)
	v.SetDefault(keyExportLength, DefaultExportLength)
	v.AutomaticEnv()

	c := Config{
		LogLevel:     parseLevel(v.GetString(keyLogLevel)),
		ExportDepth:  v.GetInt(keyExportDepth),
		ExportLength: v.GetInt(keyExportLength),
	}
	if c.ExportDepth <= 0 {
		c.ExportDepth = DefaultExportDepth
	}
	if c.ExportLength <= 0 {
		c.ExportLength = DefaultExportLength
	}
	return c
}

var defaultConfig = sync.OnceValue(Load)

// Default returns the configuration loaded on first use.
func Default() Config {
	return defaultConfig()
}

func parseLevel(raw string) zerolog.Level {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.Disabled
	}
	return lvl
}
