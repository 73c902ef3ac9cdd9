package config

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PEOPLE_DATABASE__HOST", "db.internal")
	t.Setenv("PEOPLE_DATABASE__PORT", "5433")
	t.Setenv("PEOPLE_DATABASE__USER", "people")
	t.Setenv("PEOPLE_DATABASE__PASSWORD", "pa:ss@word")
	t.Setenv("PEOPLE_DATABASE__NAME", "people")
}

func TestLoadConfigDefaults(t *testing.T) {
	setDatabaseEnv(t)

	cfg, err := LoadConfig()
	assert.NilError(t, err)

	assert.Check(t, is.Equal(cfg.Primary.Env, "development"))
	assert.Check(t, is.Equal(cfg.Server.Host, "localhost"))
	assert.Check(t, is.Equal(cfg.Server.Port, "8080"))
	assert.Check(t, is.Equal(cfg.Server.ReadTimeout, 30))
	assert.Check(t, is.DeepEqual(cfg.Server.CORSAllowedOrigins, []string{"*"}))
	assert.Check(t, is.Equal(cfg.Database.MaxOpenConns, 10))
	assert.Check(t, is.Equal(cfg.Database.MaxIdleConns, 2))

	assert.Assert(t, cfg.Observability != nil)
	assert.Check(t, is.Equal(cfg.Observability.ServiceName, ServiceName))
	assert.Check(t, is.Equal(cfg.Observability.Environment, "development"))
	assert.Check(t, is.Equal(cfg.Observability.Logging.SlowQueryThreshold, 100*time.Millisecond))
}

func TestLoadConfigFromEnv(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("PEOPLE_PRIMARY__ENV", "production")
	t.Setenv("PEOPLE_SERVER__HOST", "0.0.0.0")
	t.Setenv("PEOPLE_SERVER__PORT", "9090")
	t.Setenv("PEOPLE_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PEOPLE_SERVER__RATE_LIMIT", "12.5")
	t.Setenv("PEOPLE_DATABASE__MAX_OPEN_CONNS", "4")
	t.Setenv("PEOPLE_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("PEOPLE_OBSERVABILITY__HEALTH_CHECKS__TIMEOUT", "2s")

	cfg, err := LoadConfig()
	assert.NilError(t, err)

	assert.Check(t, is.Equal(cfg.Server.Address(), "0.0.0.0:9090"))
	assert.Check(t, is.DeepEqual(cfg.Server.CORSAllowedOrigins, []string{"https://a.example", "https://b.example"}))
	assert.Check(t, is.Equal(cfg.Server.RateLimit, 12.5))
	assert.Check(t, is.Equal(cfg.Database.MaxOpenConns, 4))
	assert.Check(t, cfg.Observability.IsProduction())
	assert.Check(t, is.Equal(cfg.Observability.GetLogLevel(), "warn"))
	assert.Check(t, is.Equal(cfg.Observability.HealthChecks.Timeout, 2*time.Second))
	// Partially provided observability block keeps the remaining defaults.
	assert.Check(t, is.Equal(cfg.Observability.Logging.Format, "json"))
	assert.Check(t, is.DeepEqual(cfg.Observability.HealthChecks.Checks, []string{"database", "redis"}))
}

func TestLoadConfigDatabaseURL(t *testing.T) {
	t.Setenv("PEOPLE_DATABASE__URL", "postgres://u:p@localhost:5432/people?sslmode=disable")

	cfg, err := LoadConfig()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(cfg.Database.DSN(), "postgres://u:p@localhost:5432/people?sslmode=disable"))
}

func TestLoadConfigMissingDatabase(t *testing.T) {
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("PEOPLE_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "people",
		Password: "pa:ss@word",
		Name:     "people",
	}

	assert.Equal(t, d.DSN(), "postgres://people:pa%3Ass%40word@[::1]:5432/people?sslmode=disable")

	d.SSLMode = "require"
	assert.Equal(t, d.DSN(), "postgres://people:pa%3Ass%40word@[::1]:5432/people?sslmode=require")
}

func TestServerBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name:   "configured host and port",
			server: ServerConfig{Host: "api.internal", Port: "8080"},
			want:   "http://api.internal:8080",
		},
		{
			name:   "wildcard bind address",
			server: ServerConfig{Host: "0.0.0.0", Port: "8080"},
			want:   "http://localhost:8080",
		},
		{
			name:   "public url wins",
			server: ServerConfig{Host: "0.0.0.0", Port: "8080", PublicURL: "https://people.example.com/"},
			want:   "https://people.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.server.BaseURL(), tt.want)
		})
	}
}

func TestObservabilityLogLevelFallback(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Check(t, is.Equal(cfg.GetLogLevel(), "info"))

	cfg.Environment = "development"
	assert.Check(t, is.Equal(cfg.GetLogLevel(), "debug"))
}
