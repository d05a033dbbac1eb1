package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,           default=8080"`
	Env        string        `env:"ENV,            default=development"`
	LogLevel   string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"JWT_EXPIRES_IN, default=24h"`
	BcryptCost int           `env:"BCRYPT_COST,    default=10"`

	Admin AdminConfig
}

// AdminConfig is the seed administrator created at startup when no
// admin account exists yet.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@sps.com"`
	Name     string `env:"ADMIN_NAME,     default=Admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set to a non-empty secret")
	}
	return &cfg, nil
}
