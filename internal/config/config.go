// Package config loads the application configuration from a YAML file
// and applies TINYAPP_* environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const envPrefix = "TINYAPP_"

var ErrMissingSessionSecret = errors.New("session secret is required outside dev")

type Config struct {
	Env        string `yaml:"env" env:"ENV"`
	HTTPServer `yaml:"http_server" envPrefix:"HTTP_"`
	Session    `yaml:"session" envPrefix:"SESSION_"`
	Password   `yaml:"password" envPrefix:"PASSWORD_"`
}

type HTTPServer struct {
	Port           int           `yaml:"port" env:"PORT"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	MaxHeaderBytes int           `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES"`
	CertFile       string        `yaml:"cert_file" env:"CERT_FILE"`
	KeyFile        string        `yaml:"key_file" env:"KEY_FILE"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Session struct {
	Secret     string        `yaml:"secret" env:"SECRET"`
	CookieName string        `yaml:"cookie_name" env:"COOKIE_NAME"`
	TTL        time.Duration `yaml:"ttl" env:"TTL"`
	Secure     bool          `yaml:"secure" env:"SECURE"`
}

// devSessionSecret signs sessions in dev when no secret is configured.
const devSessionSecret = "tinyapp-dev-secret"

var defaultSession = Session{
	CookieName: "tinyapp_session",
	TTL:        24 * time.Hour,
}

type Password struct {
	Cost int `yaml:"cost" env:"COST"`
}

var defaultPassword = Password{
	Cost: 10,
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("%s: failed to parse environment: %w", op, err)
	}

	if err := finalize(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.HTTPServer = defaultHTTPServer
	cfg.Session = defaultSession
	cfg.Password = defaultPassword
}

func finalize(cfg *Config) error {
	if cfg.Session.Secret != "" {
		return nil
	}

	if cfg.Env != EnvDev {
		return ErrMissingSessionSecret
	}

	cfg.Session.Secret = devSessionSecret
	return nil
}
