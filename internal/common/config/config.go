// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Profile    ProfileConfig    `mapstructure:"profile"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClassifierConfig holds intent classification settings.
type ClassifierConfig struct {
	// Threshold is the minimum winning score before falling back to UNKNOWN.
	Threshold float64 `mapstructure:"threshold"`
}

// CatalogConfig holds the movie/showtime reference data settings.
// An empty Path means the built-in seed catalog is used.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ProfileConfig holds settings for the identity store.
type ProfileConfig struct {
	Backend string      `mapstructure:"backend"` // "file" or "redis"
	Path    string      `mapstructure:"path"`    // file backend
	Key     string      `mapstructure:"key"`     // redis backend
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MetricsConfig holds the optional prometheus listener settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func (c *Config) validate() error {
	switch c.Profile.Backend {
	case "file":
		if c.Profile.Path == "" {
			return fmt.Errorf("profile.path is required for the file backend")
		}
	case "redis":
		if c.Profile.Redis.Address == "" {
			return fmt.Errorf("profile.redis.address is required for the redis backend")
		}
	default:
		return fmt.Errorf("profile.backend must be \"file\" or \"redis\", got %q", c.Profile.Backend)
	}

	if c.Classifier.Threshold < 0 || c.Classifier.Threshold > 1 {
		return fmt.Errorf("classifier.threshold must be in [0,1], got %f", c.Classifier.Threshold)
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("metrics.address is required when metrics are enabled")
	}

	return nil
}
