package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL              string        `mapstructure:"DATABASE_URL"`
	JWTSecret                string        `mapstructure:"JWT_SECRET"`
	JWTTTL                   time.Duration `mapstructure:"JWT_TTL"`
	Port                     string        `mapstructure:"PORT"`
	GinMode                  string        `mapstructure:"GIN_MODE"`
	LogLevel                 string        `mapstructure:"LOG_LEVEL"`
	StorageDir               string        `mapstructure:"STORAGE_DIR"`
	PublicBaseURL            string        `mapstructure:"PUBLIC_BASE_URL"`
	RedisURL                 string        `mapstructure:"REDIS_URL"`
	RequireEmailConfirmation bool          `mapstructure:"REQUIRE_EMAIL_CONFIRMATION"`
	LoginRatePerMinute       int           `mapstructure:"LOGIN_RATE_PER_MINUTE"`
}

var keys = []string{
	"DATABASE_URL", "JWT_SECRET", "JWT_TTL", "PORT", "GIN_MODE", "LOG_LEVEL",
	"STORAGE_DIR", "PUBLIC_BASE_URL", "REDIS_URL", "REQUIRE_EMAIL_CONFIRMATION",
	"LOGIN_RATE_PER_MINUTE",
}

// Load reads the configuration from a .env file in path (if present) and
// from environment variables, which take precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("JWT_TTL", 7*24*time.Hour)
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DIR", "./storage")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("REQUIRE_EMAIL_CONFIRMATION", false)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)

	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return &cfg, nil
}
