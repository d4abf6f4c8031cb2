// Package config loads runtime settings from defaults, an optional config
// file, SPLITTERM_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, e.g. SPLITTERM_LOG_LEVEL
const EnvPrefix = "SPLITTERM"

// Config holds all runtime settings
type Config struct {
	Log      Log      `mapstructure:"log"`
	Terminal Terminal `mapstructure:"terminal"`
	Status   Status   `mapstructure:"status"`
}

// Log controls diagnostic output; stdout is the terminal so logs never go there
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Terminal controls the raw-mode backend
type Terminal struct {
	AltScreen  bool `mapstructure:"alt_screen"`
	HideCursor bool `mapstructure:"hide_cursor"`
}

// Status controls status bar rendering
type Status struct {
	Separator string `mapstructure:"separator"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-file":    "log.file",
	"alt-screen":  "terminal.alt_screen",
	"hide-cursor": "terminal.hide_cursor",
	"separator":   "status.separator",
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Log:      Log{Level: "info"},
		Terminal: Terminal{AltScreen: true, HideCursor: true},
		Status:   Status{Separator: " │ "},
	}
}

// RegisterFlags adds the config flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-file", d.Log.File, "write logs to this file; logs are discarded when empty")
	fs.Bool("alt-screen", d.Terminal.AltScreen, "use the alternate screen buffer")
	fs.Bool("hide-cursor", d.Terminal.HideCursor, "hide the cursor while running")
	fs.String("separator", d.Status.Separator, "status bar section separator")
}

// Load resolves the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("terminal.alt_screen", d.Terminal.AltScreen)
	v.SetDefault("terminal.hide_cursor", d.Terminal.HideCursor)
	v.SetDefault("status.separator", d.Status.Separator)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be checked by type alone
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
