// Package config loads user defaults from a config file and the environment using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/idelchi/lucky/internal/filesize"
	"github.com/idelchi/lucky/internal/jsonfmt"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "lucky"
	// FileName is the config file name without extension (config.yaml, config.toml, ...).
	FileName = "config"
	// EnvPrefix prefixes environment overrides, e.g. LUCKY_SIZE_LIMIT.
	EnvPrefix = "LUCKY"
)

// Config holds user defaults. Command-line flags take precedence over it.
type Config struct {
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug"`
	// Size holds defaults for "file size".
	Size Size `mapstructure:"size"`
	// JSON holds defaults for "json format".
	JSON JSON `mapstructure:"json"`
}

// Size holds defaults for the file size listing.
type Size struct {
	// Limit is the number of entries to show; negative means unlimited.
	Limit int `mapstructure:"limit"`
	// Asc sorts smallest first.
	Asc bool `mapstructure:"asc"`
	// Excludes contains regex patterns to exclude.
	Excludes []string `mapstructure:"excludes"`
	// MinSize is the minimum file size, e.g. "1KB".
	MinSize string `mapstructure:"min_size"`
	// Parallel selects the concurrent walker.
	Parallel bool `mapstructure:"parallel"`
	// Strict makes unreadable entries fatal.
	Strict bool `mapstructure:"strict"`
}

// JSON holds defaults for JSON formatting.
type JSON struct {
	// Indent is the number of spaces per level.
	Indent int `mapstructure:"indent"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Size: Size{
			Limit:    filesize.NoLimit,
			Excludes: []string{},
			MinSize:  "0B",
		},
		JSON: JSON{
			Indent: jsonfmt.DefaultIndent,
		},
	}
}

// Dir returns the directory searched for the config file.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}

	return filepath.Join(base, AppName), nil
}

// Load reads the config. If path is empty, the file is looked up in Dir and
// may be absent; an explicit path must exist. Environment variables with
// EnvPrefix override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("size.limit", defaults.Size.Limit)
	v.SetDefault("size.asc", defaults.Size.Asc)
	v.SetDefault("size.excludes", defaults.Size.Excludes)
	v.SetDefault("size.min_size", defaults.Size.MinSize)
	v.SetDefault("size.parallel", defaults.Size.Parallel)
	v.SetDefault("size.strict", defaults.Size.Strict)
	v.SetDefault("json.indent", defaults.JSON.Indent)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)

		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
