package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`

	GamesPageSize      int   `mapstructure:"GAMES_PAGE_SIZE"`
	PublishersPageSize int   `mapstructure:"PUBLISHERS_PAGE_SIZE"`
	PersonalPageSize   int   `mapstructure:"PERSONAL_PAGE_SIZE"`
	RatingPrecision    int32 `mapstructure:"RATING_PRECISION"`
}

var AppConfig *Config

var keys = []string{
	"DATABASE_URL", "JWT_SECRET", "PORT", "ENVIRONMENT", "LOG_LEVEL",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SESSION_TTL",
	"GAMES_PAGE_SIZE", "PUBLISHERS_PAGE_SIZE", "PERSONAL_PAGE_SIZE", "RATING_PRECISION",
}

// Load reads the configuration from an optional .env file in dir and the
// environment. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", 14*24*time.Hour)
	v.SetDefault("GAMES_PAGE_SIZE", 6)
	v.SetDefault("PUBLISHERS_PAGE_SIZE", 9)
	v.SetDefault("PERSONAL_PAGE_SIZE", 5)
	v.SetDefault("RATING_PRECISION", 1)

	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	// Unmarshal only sees env values for keys viper already knows about.
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.GamesPageSize < 1 || c.PublishersPageSize < 1 || c.PersonalPageSize < 1 {
		return errors.New("page sizes must be positive")
	}
	if c.RatingPrecision < 0 {
		return errors.New("RATING_PRECISION must not be negative")
	}
	return nil
}

// LoadConfig loads the configuration from a .env file and environment variables
// into AppConfig.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to load configuration, %v", err)
	}
	AppConfig = cfg
}
