package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	GitHub    GitHubConfig    `mapstructure:"github"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Output    OutputConfig    `mapstructure:"output"`
}

// GitHubConfig contains settings for the GitHub API client.
// Token is read from GITHUB_TOKEN and never from a config file on disk.
type GitHubConfig struct {
	Token     string `mapstructure:"token"`
	Host      string `mapstructure:"host"`
	UserAgent string `mapstructure:"userAgent"`
}

// CacheConfig contains response-cache settings
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttlSeconds"`
}

// RateLimitConfig contains quota-handling settings
type RateLimitConfig struct {
	// Threshold is the remaining-quota level below which authoritative
	// refreshes start
	Threshold int `mapstructure:"threshold"`

	// FailWhenExceeded fails immediately on an exhausted quota instead of
	// waiting for the reset
	FailWhenExceeded bool `mapstructure:"failWhenExceeded"`
}

// OutputConfig contains output preferences
type OutputConfig struct {
	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
	JSON    bool `mapstructure:"json"`
	Color   bool `mapstructure:"color"`
}

var (
	// cfg holds the loaded configuration
	cfg *Config
	// v is the viper instance
	v *viper.Viper
)

// Load loads the configuration from files and environment variables
func Load() (*Config, error) {
	v = viper.New()

	// Set defaults
	setDefaults(v)

	// Set config name and type
	v.SetConfigName(".ghpeek")
	v.SetConfigType("json")

	// Add config search paths
	v.AddConfigPath(".")                     // Current directory
	v.AddConfigPath("$HOME/.config/gh-peek") // User config directory

	// Read in environment variables with GHPEEK_ prefix
	v.SetEnvPrefix("GHPEEK")
	v.AutomaticEnv()

	// The access token comes from the standard GITHUB_TOKEN variable
	if err := v.BindEnv("github.token", "GHPEEK_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token variable: %w", err)
	}

	// Try to read config file (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; using defaults
	}

	// Unmarshal config into struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		// If config hasn't been loaded, load it with defaults
		if c, err := Load(); err == nil {
			cfg = c
		} else {
			cfg = defaultConfig()
		}
	}
	return cfg
}

// defaultConfig returns the built-in defaults without reading any files.
func defaultConfig() *Config {
	dv := viper.New()
	setDefaults(dv)
	c := &Config{}
	_ = dv.Unmarshal(c)
	return c
}

// GetConfigFilePath returns the path to the config file being used
func GetConfigFilePath() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// GitHub defaults
	v.SetDefault("github.host", "")
	v.SetDefault("github.userAgent", "gh-peek")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttlSeconds", 300)

	// Rate limit defaults
	v.SetDefault("rateLimit.threshold", 100)
	v.SetDefault("rateLimit.failWhenExceeded", false)

	// Output defaults
	v.SetDefault("output.verbose", false)
	v.SetDefault("output.quiet", false)
	v.SetDefault("output.json", false)
	v.SetDefault("output.color", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("invalid cache.ttlSeconds: %d (must be >= 0)", c.Cache.TTLSeconds)
	}
	if c.RateLimit.Threshold < 0 {
		return fmt.Errorf("invalid rateLimit.threshold: %d (must be >= 0)", c.RateLimit.Threshold)
	}
	if c.GitHub.UserAgent == "" {
		return fmt.Errorf("github.userAgent must not be empty")
	}
	return nil
}
