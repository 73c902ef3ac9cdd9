package main

import (
	"net/http"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
)

func TestRunReturnsListenError(t *testing.T) {
	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            "99999",
			ShutdownTimeout: 1,
		}},
		Logger: &logger,
	}
	srv.SetupHTTPServer(http.NotFoundHandler())

	err := run(srv, &logger)
	assert.ErrorContains(t, err, "failed to start server")
}
