package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Simulation
	SimSeed            int64   `mapstructure:"SIM_SEED"` // 0 seeds from the clock
	PartitionNoise     float64 `mapstructure:"PARTITION_NOISE"`
	HomeFieldBonus     float64 `mapstructure:"HOME_FIELD_BONUS"`
	DevelopmentWorkers int     `mapstructure:"DEVELOPMENT_WORKERS"`
	TotalWeeks         int     `mapstructure:"TOTAL_WEEKS"`

	// Auto simulation
	AutoSimEnabled  bool   `mapstructure:"AUTO_SIM_ENABLED"`
	AutoSimSchedule string `mapstructure:"AUTO_SIM_SCHEDULE"`

	// Results fan-out
	ResultCacheTTL            time.Duration `mapstructure:"RESULT_CACHE_TTL"`
	PublishResults            bool          `mapstructure:"PUBLISH_RESULTS"`
	PublisherBreakerThreshold int           `mapstructure:"PUBLISHER_BREAKER_THRESHOLD"`

	// API limits
	APIRateLimit float64 `mapstructure:"API_RATE_LIMIT"` // simulation requests per second
	APIRateBurst int     `mapstructure:"API_RATE_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("DATABASE_URL", "gmcareer.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("SIM_SEED", 0)
	viper.SetDefault("PARTITION_NOISE", 0.04)
	viper.SetDefault("HOME_FIELD_BONUS", 1.5)
	viper.SetDefault("DEVELOPMENT_WORKERS", 4)
	viper.SetDefault("TOTAL_WEEKS", 18)
	viper.SetDefault("AUTO_SIM_ENABLED", false)
	viper.SetDefault("AUTO_SIM_SCHEDULE", "0 20 * * 6") // Saturdays 20:00
	viper.SetDefault("RESULT_CACHE_TTL", "24h")
	viper.SetDefault("PUBLISH_RESULTS", false)
	viper.SetDefault("PUBLISHER_BREAKER_THRESHOLD", 5) // open after 5 consecutive failures
	viper.SetDefault("API_RATE_LIMIT", 2)
	viper.SetDefault("API_RATE_BURST", 4)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.TotalWeeks <= 0 {
		return fmt.Errorf("TOTAL_WEEKS must be positive, got %d", c.TotalWeeks)
	}
	if c.PartitionNoise < 0 {
		return fmt.Errorf("PARTITION_NOISE must not be negative, got %v", c.PartitionNoise)
	}
	if c.DevelopmentWorkers < 0 {
		return fmt.Errorf("DEVELOPMENT_WORKERS must not be negative, got %d", c.DevelopmentWorkers)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesPostgres reports whether DATABASE_URL names a postgres server rather
// than a sqlite file.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}
