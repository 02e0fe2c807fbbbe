package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FLORA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Upstream.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FLORA_APP_ENV" required:"true"`
	Port         string `envconfig:"FLORA_APP_PORT" default:"8081"`
	LogLevel     string `envconfig:"FLORA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FLORA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the gateway at the remote flora commerce API.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"FLORA_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"FLORA_UPSTREAM_TIMEOUT" default:"15s"`
}

func (u UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing upstream base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("upstream base url must be http or https, got %q", u.BaseURL)
	}
	if u.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"FLORA_REDIS_URL"`
	Address      string        `envconfig:"FLORA_REDIS_ADDR"`
	Password     string        `envconfig:"FLORA_REDIS_PASSWORD"`
	DB           int           `envconfig:"FLORA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FLORA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FLORA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FLORA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FLORA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FLORA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig controls how long a browsing session's identity survives.
type SessionConfig struct {
	TTLMinutes int `envconfig:"FLORA_SESSION_TTL_MINUTES" default:"720"`
}

func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"FLORA_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}
