package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Time   TimeConfig
	Angle  AngleConfig
	Repeat RepeatConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string // "dark" or "light"
	RTL   bool
}

// TimeConfig holds the date/time editor settings.
type TimeConfig struct {
	DateOrder   string // "ymd", "dmy", "mdy"
	HourStyle   string // "24" or "12"
	ShowSeconds bool
	Min         string // partial bound text, empty = unbounded
	Max         string
}

// AngleConfig holds the angle editor settings.
type AngleConfig struct {
	Notation   string // "decimal", "degmin", "degminsec"
	Compass    string // "none", "ns", "ew"
	WrapAround bool
}

// RepeatConfig holds key auto-repeat timing, in milliseconds.
type RepeatConfig struct {
	DelayMs    int
	IntervalMs int
}

// Load reads configuration from file and env. Env var overrides use prefix SEGEDIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.rtl", false)
	v.SetDefault("time.date_order", "ymd")
	v.SetDefault("time.hour_style", "24")
	v.SetDefault("time.show_seconds", true)
	v.SetDefault("time.min", "")
	v.SetDefault("time.max", "")
	v.SetDefault("angle.notation", "degminsec")
	v.SetDefault("angle.compass", "ns")
	v.SetDefault("angle.wrap_around", false)
	v.SetDefault("repeat.delay_ms", 400)
	v.SetDefault("repeat.interval_ms", 80)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SEGEDIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "segedit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SEGEDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. The TUI settings toggles call this for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("SEGEDIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "segedit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.rtl", cfg.UI.RTL)
	v.Set("time.date_order", cfg.Time.DateOrder)
	v.Set("time.hour_style", cfg.Time.HourStyle)
	v.Set("time.show_seconds", cfg.Time.ShowSeconds)
	v.Set("time.min", cfg.Time.Min)
	v.Set("time.max", cfg.Time.Max)
	v.Set("angle.notation", cfg.Angle.Notation)
	v.Set("angle.compass", cfg.Angle.Compass)
	v.Set("angle.wrap_around", cfg.Angle.WrapAround)
	v.Set("repeat.delay_ms", cfg.Repeat.DelayMs)
	v.Set("repeat.interval_ms", cfg.Repeat.IntervalMs)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
