package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Admin   AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://127.0.0.1:27017"`
	Database string `env:"MONGO_DB,  default=tododb"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type SessionConfig struct {
	// Store selects the session backend: "memory" or "redis".
	Store  string        `env:"SESSION_STORE,  default=memory"`
	Secret string        `env:"SESSION_SECRET, default=change-me-session-secret"`
	TTL    time.Duration `env:"SESSION_TTL,    default=24h"`
}

type AdminConfig struct {
	Username  string        `env:"ADMIN_USERNAME,  default=admin"`
	Password  string        `env:"ADMIN_PASSWORD,  default=pass"`
	JWTSecret string        `env:"JWT_SECRET,      default=change-me-jwt-secret"`
	TokenTTL  time.Duration `env:"ADMIN_TOKEN_TTL, default=1h"`
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_STORE %q", c.Session.Store)
	}
	if !c.IsDevelopment() {
		if c.Session.Secret == "change-me-session-secret" || c.Admin.JWTSecret == "change-me-jwt-secret" {
			return errors.New("config: SESSION_SECRET and JWT_SECRET must be set outside development")
		}
	}
	return nil
}

// Load reads an optional .env file and then the environment using go-envconfig.
// Variables already present in the environment win over the .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}

	cfg, err := FromLookuper(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// FromLookuper builds and validates a Config from the given source.
func FromLookuper(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
