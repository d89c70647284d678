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
	API     APIConfig
	Gallery GalleryConfig
}

// APIConfig holds the Lorem Picsum endpoint settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// GalleryConfig holds gallery defaults: batch size and the filter the app
// starts with before the user commits anything.
type GalleryConfig struct {
	BatchSize int  `mapstructure:"batch_size"`
	Width     int  `mapstructure:"width"`
	Height    int  `mapstructure:"height"`
	Blur      int  `mapstructure:"blur"`
	Greyscale bool `mapstructure:"greyscale"`
}

// Load reads configuration from file and env. Env var overrides use prefix LOREMPICSUM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "https://picsum.photos")
	v.SetDefault("api.timeout_seconds", 15)
	v.SetDefault("gallery.batch_size", 10)
	v.SetDefault("gallery.width", 300)
	v.SetDefault("gallery.height", 200)
	v.SetDefault("gallery.blur", 0)
	v.SetDefault("gallery.greyscale", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LOREMPICSUM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lorempicsum"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOREMPICSUM")
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
