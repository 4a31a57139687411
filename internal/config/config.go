// Package config loads the settings of the filedialog example
// programs from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonIrizarry/filedialog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides, e.g.
// FILEDIALOG_MULTI_SELECTION=true.
const EnvPrefix = "FILEDIALOG"

// Config holds the settings of an example program.
type Config struct {
	Width          int    `mapstructure:"width"`
	Height         int    `mapstructure:"height"`
	Dir            string `mapstructure:"dir"`
	Filter         string `mapstructure:"filter"`
	ShowHidden     bool   `mapstructure:"show_hidden"`
	MultiSelection bool   `mapstructure:"multi_selection"`
	ShowHints      bool   `mapstructure:"show_hints"`

	// LogFile enables debug logging to the named file.
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from path, or, if that is empty, from
// the file named by FILEDIALOG_CONFIG, or else from config.{toml,yaml,json}
// in ~/.config/filedialog. A missing default file is not an error.
// Environment variables override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("width", 60)
	v.SetDefault("height", 40)
	v.SetDefault("dir", "")
	v.SetDefault("filter", "")
	v.SetDefault("show_hidden", false)
	v.SetDefault("multi_selection", false)
	v.SetDefault("show_hints", true)
	v.SetDefault("log_file", "")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}

	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "filedialog"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Dialog converts c into a dialog configuration.
func (c Config) Dialog() (filedialog.Config, error) {
	filter, err := filedialog.ParsePattern(c.Filter)
	if err != nil {
		return filedialog.Config{}, fmt.Errorf("filter: %w", err)
	}

	return filedialog.Config{
		Width:          c.Width,
		Height:         c.Height,
		Dir:            c.Dir,
		Filter:         filter,
		ShowHidden:     c.ShowHidden,
		MultiSelection: c.MultiSelection,
		ShowHints:      c.ShowHints,
	}, nil
}
