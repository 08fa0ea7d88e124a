package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWTSecret signs locally-issued HS256 tokens. When AuthJWKSURL is
	// set, bearer tokens are instead verified against that remote key
	// set (hosted auth providers publish one).
	JWTSecret   string
	AuthJWKSURL string

	Port            int
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Load reads configuration from the environment with development
// defaults for everything except the database URL.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PORT", 8080)
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "720h")

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		AuthJWKSURL:     v.GetString("AUTH_JWKS_URL"),
		Port:            v.GetInt("PORT"),
		AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}
