package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,      default=development"`
	Port     string `env:"PORT,     default=8080"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	DBURL    string `env:"DB_URL, required"`

	// Token issuance. A missing signing secret halts startup; it is never a
	// per-request error.
	TokenSecret    string `env:"TOKEN_SECRET, required"`
	TokenIssuer    string `env:"TOKEN_ISSUER,   default=storelane-auth"`
	TokenAudience  string `env:"TOKEN_AUDIENCE, default=storelane"`
	TokenExpiryMin int    `env:"TOKEN_EXPIRY_MINUTES, default=60"`

	// Brute-force lockout.
	LoginMaxAttempts  int `env:"LOGIN_MAX_ATTEMPTS,    default=5"`
	LockoutWindowMin  int `env:"LOCKOUT_WINDOW_MINUTES, default=15"`
	ReaperIntervalMin int `env:"REAPER_INTERVAL_MINUTES, default=10"`

	// Password policy and hashing. The maximum is capped at bcrypt's 72-byte
	// input limit regardless of configuration.
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH, default=8"`
	PasswordMaxLength int `env:"PASSWORD_MAX_LENGTH, default=72"`
	BcryptCost        int `env:"BCRYPT_COST, default=10"`
}

// Load reads configuration from the environment. All values are read once at
// startup; there is no hot reload.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
