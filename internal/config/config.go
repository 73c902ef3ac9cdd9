// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when one exists), loads them into structured Go types, applies
// defaults and validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Fill defaults for server, pool and observability settings.
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix PEOPLE_.

	Keys are lowercased, the prefix is removed and a double underscore
	separates nesting levels, so single underscores can stay inside
	field names:

		PEOPLE_SERVER__PORT                 -> server.port
		PEOPLE_DATABASE__MAX_OPEN_CONNS     -> database.max_open_conns
		PEOPLE_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "PEOPLE_"

// ServiceName is reported in logs and New Relic.
const ServiceName = "people-api"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Host and Port are the bind address. They are also the contract for the
// Location header of created resources unless PublicURL overrides it.
// Timeouts are whole seconds.
type ServerConfig struct {
	Host               string   `koanf:"host"`
	Port               string   `koanf:"port" validate:"required,numeric"`
	PublicURL          string   `koanf:"public_url" validate:"omitempty,url"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// Address returns the host:port the HTTP server binds to.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// BaseURL returns the externally visible root URL of the API, without a
// trailing slash. It is used to build Location headers.
func (s ServerConfig) BaseURL() string {
	if s.PublicURL != "" {
		return strings.TrimRight(s.PublicURL, "/")
	}
	host := s.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, s.Port)
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// URL is a complete connection string. When it is set the discrete
// connection fields are not required and are ignored.
// Lifetimes are whole seconds.
type DatabaseConfig struct {
	URL             string `koanf:"url"`
	Host            string `koanf:"host" validate:"required_without=URL"`
	Port            int    `koanf:"port" validate:"required_without=URL"`
	User            string `koanf:"user" validate:"required_without=URL"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_without=URL"`
	SSLMode         string `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=1"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=1"`
}

// DSN returns the connection string for pgx.
//
// The password is URL-escaped so characters like ':' or '@' do not break
// the URL structure.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		sslMode,
	)
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; empty means Redis is not used.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults, validates it and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment are not user-configurable; they always
	// follow the primary block so telemetry is tagged consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "development"
	}

	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}

	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 && c.Database.MaxOpenConns >= 2 {
		c.Database.MaxIdleConns = 2
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}
	if c.Database.ConnMaxIdleTime == 0 {
		c.Database.ConnMaxIdleTime = 300
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	} else {
		c.Observability.fillDefaults()
	}
}
