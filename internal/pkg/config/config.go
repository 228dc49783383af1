package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Token store backends.
const (
	StoreBolt   = "bolt"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=3001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BackendURL is the base URL of the remote API the console talks to.
	BackendURL string `env:"BACKEND_URL, default=http://localhost:8080"`
	// RegisterRedirectDelay is how long the registration confirmation stays
	// on screen before navigating to the login page.
	RegisterRedirectDelay time.Duration `env:"REGISTER_REDIRECT_DELAY, default=2s"`

	Session SessionConfig
	Redis   RedisConfig
	Bolt    BoltConfig
	Stub    StubConfig
}

type SessionConfig struct {
	Store string `env:"TOKEN_STORE, default=bolt"`
	Key   string `env:"TOKEN_KEY,   default=token"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type BoltConfig struct {
	DataDir string `env:"DATA_DIR, default=./data"`
}

// StubConfig configures the development backend in cmd/stub-backend.
type StubConfig struct {
	Port      string `env:"STUB_PORT,  default=8080"`
	JWTSecret string `env:"JWT_SECRET, default=mysecretkey"`
}

// IsDevelopment reports whether the console runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory, when present, is applied first and
// never overrides variables already set in the environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}

	switch cfg.Session.Store {
	case StoreBolt, StoreRedis, StoreMemory:
	default:
		return nil, fmt.Errorf("unknown TOKEN_STORE %q", cfg.Session.Store)
	}
	if cfg.Session.Key == "" {
		return nil, fmt.Errorf("TOKEN_KEY must not be empty")
	}
	return &cfg, nil
}
