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
	UI      UIConfig
	Journal JournalConfig
	Log     LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Scope     string
	AltScreen bool `mapstructure:"alt_screen"`
}

// JournalConfig holds the sqlite visibility journal settings.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "sheetkit")
}

func defaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "sheetkit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SHEETKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.scope", "global")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(dataDir(), "journal.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "sheetkit.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHEETKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(defaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHEETKIT")
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

// Save writes cfg to $SHEETKIT_CONFIG or the default config path, creating
// the directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SHEETKIT_CONFIG")
	if path == "" {
		path = defaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.scope", cfg.UI.Scope)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
