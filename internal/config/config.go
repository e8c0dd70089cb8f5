package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the web frontend. Values come from the
// process environment, optionally seeded from a .env file.
type Config struct {
	Port           string        `env:"WEB_PORT" envDefault:"8080"`
	BaseURL        string        `env:"WEB_BASE_URL" envDefault:"http://localhost:8080"`
	TrustProxy     bool          `env:"WEB_TRUST_PROXY" envDefault:"false"`
	BackendURL     string        `env:"WEB_BACKEND_URL,required"`
	BackendTimeout time.Duration `env:"WEB_BACKEND_TIMEOUT" envDefault:"15s"`

	DBPath         string        `env:"WEB_DB_PATH" envDefault:"web.db"`
	SessionBackend string        `env:"WEB_SESSION_BACKEND" envDefault:"sqlite"`
	SessionSecret  string        `env:"WEB_SESSION_SECRET,required"`
	SessionTTL     time.Duration `env:"WEB_SESSION_TTL" envDefault:"168h"`
	SecureCookies  bool          `env:"WEB_SECURE_COOKIES" envDefault:"false"`

	RedisAddr     string `env:"WEB_REDIS_ADDR"`
	RedisPassword string `env:"WEB_REDIS_PASSWORD"`
	RedisDB       int    `env:"WEB_REDIS_DB" envDefault:"0"`

	LogLevel  string `env:"WEB_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"WEB_LOG_FORMAT" envDefault:"text"`

	DefaultLanguage string `env:"WEB_DEFAULT_LANGUAGE" envDefault:"sr-latin"`
	BreakerFailures uint32 `env:"WEB_BREAKER_FAILURES" envDefault:"5"`
}

// Load reads an optional .env file (path from WEB_ENV_FILE, default ".env")
// and parses the environment into a Config.
func Load() (Config, error) {
	envFile := os.Getenv("WEB_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	} else if err != nil {
		slog.Debug("no env file, using process environment", "path", envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c Config) Validate() error {
	switch c.SessionBackend {
	case "sqlite":
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("WEB_REDIS_ADDR is required when WEB_SESSION_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}

	u, err := url.Parse(c.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend url %q", c.BackendURL)
	}

	if c.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	return nil
}
