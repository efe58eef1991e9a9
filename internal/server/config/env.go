package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig maps environment variables onto Config. Token lifetimes keep
// their deployment units: minutes for access tokens, days for refresh tokens.
type envConfig struct {
	EndpointAddrHTTP         string `env:"MEDIBOOK_HTTP_ADDR"`
	DatabaseDSN              string `env:"MEDIBOOK_DATABASE_DSN"`
	RedisAddr                string `env:"MEDIBOOK_REDIS_ADDR"`
	RedisPassword            string `env:"MEDIBOOK_REDIS_PASSWORD"`
	SecretKey                string `env:"MEDIBOOK_JWT_SECRET"`
	TokenIssuer              string `env:"MEDIBOOK_JWT_ISSUER"`
	TokenAudience            string `env:"MEDIBOOK_JWT_AUDIENCE"`
	AccessTokenValidityMins  int    `env:"MEDIBOOK_ACCESS_TOKEN_MINUTES"`
	RefreshTokenValidityDays int    `env:"MEDIBOOK_REFRESH_TOKEN_DAYS"`
	BcryptCost               int    `env:"MEDIBOOK_BCRYPT_COST"`
}

// parseEnv overlays environment variables onto the provided Config.
// Unset variables leave the existing values untouched.
func parseEnv(config *Config) error {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.RedisAddr != "" {
		config.RedisAddr = c.RedisAddr
	}
	if c.RedisPassword != "" {
		config.RedisPassword = c.RedisPassword
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenIssuer != "" {
		config.TokenIssuer = c.TokenIssuer
	}
	if c.TokenAudience != "" {
		config.TokenAudience = c.TokenAudience
	}
	if c.AccessTokenValidityMins > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityMins) * time.Minute
	}
	if c.RefreshTokenValidityDays > 0 {
		config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDays) * 24 * time.Hour
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}

	return nil
}
