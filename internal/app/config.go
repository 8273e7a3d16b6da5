// Package app provides application-level configuration.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ashritanshuman/cpp-forge-ide/internal/console"
)

// Config holds the application configuration. Every field has a working
// default; a missing config file is not an error.
type Config struct {
	UI            UIConfig            `mapstructure:"ui"`
	Console       ConsoleConfig       `mapstructure:"console"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme is the color theme name (future use).
	Theme string `mapstructure:"theme"`
	// TabWidth is the editor tab width in spaces.
	TabWidth int `mapstructure:"tab_width"`
}

// ConsoleConfig paces the simulated build-and-run script, in milliseconds.
type ConsoleConfig struct {
	CompileDelayMS int `mapstructure:"compile_delay_ms"`
	LinkDelayMS    int `mapstructure:"link_delay_ms"`
	RunDelayMS     int `mapstructure:"run_delay_ms"`
	ExitDelayMS    int `mapstructure:"exit_delay_ms"`
}

// StorageConfig locates the durable workspace slot.
type StorageConfig struct {
	// DataDir overrides the default data directory when non-empty.
	DataDir string `mapstructure:"data_dir"`
}

// NotificationsConfig holds notification settings.
type NotificationsConfig struct {
	// Desktop enables a desktop notification when a simulated run finishes.
	Desktop bool `mapstructure:"desktop"`
}

// Delays converts the configured pacing into console delays, substituting
// the stock pacing for unset or negative values.
func (c ConsoleConfig) Delays() console.Delays {
	d := console.DefaultDelays()
	if c.CompileDelayMS > 0 {
		d.Compile = time.Duration(c.CompileDelayMS) * time.Millisecond
	}
	if c.LinkDelayMS > 0 {
		d.Link = time.Duration(c.LinkDelayMS) * time.Millisecond
	}
	if c.RunDelayMS > 0 {
		d.Run = time.Duration(c.RunDelayMS) * time.Millisecond
	}
	if c.ExitDelayMS > 0 {
		d.Exit = time.Duration(c.ExitDelayMS) * time.Millisecond
	}
	return d
}

// LoadConfig reads config.toml from configDir. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigName("config")
	v.AddConfigPath(configDir)

	v.SetDefault("ui.theme", "catppuccin-mocha")
	v.SetDefault("ui.tab_width", 4)
	v.SetDefault("console.compile_delay_ms", 450)
	v.SetDefault("console.link_delay_ms", 600)
	v.SetDefault("console.run_delay_ms", 500)
	v.SetDefault("console.exit_delay_ms", 350)
	v.SetDefault("storage.data_dir", "")
	v.SetDefault("notifications.desktop", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &c, nil
}

// SaveConfig writes the configuration to config.toml in configDir. Used by
// future settings surfaces; the stock app never calls it implicitly.
func SaveConfig(configDir string, c *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", c.UI.Theme)
	v.Set("ui.tab_width", c.UI.TabWidth)
	v.Set("console.compile_delay_ms", c.Console.CompileDelayMS)
	v.Set("console.link_delay_ms", c.Console.LinkDelayMS)
	v.Set("console.run_delay_ms", c.Console.RunDelayMS)
	v.Set("console.exit_delay_ms", c.Console.ExitDelayMS)
	v.Set("storage.data_dir", c.Storage.DataDir)
	v.Set("notifications.desktop", c.Notifications.Desktop)

	if err := v.WriteConfigAs(filepath.Join(configDir, "config.toml")); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
