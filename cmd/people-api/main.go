package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/database"
	"github.com/deppfellow/people-api/internal/handler"
	"github.com/deppfellow/people-api/internal/logger"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/router"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = database.Migrate(migrateCtx, &log, cfg)
	cancelMigrate()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories()

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	err = run(srv, &log)
	if err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	} else {
		log.Info().Msg("server exited properly")
	}

	loggerService.Shutdown()

	if err != nil {
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure, then shuts the
// server down within server.shutdown_timeout.
func run(srv *server.Server, log *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	case err, ok := <-serveErr:
		if ok {
			startErr = fmt.Errorf("failed to start server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(srv.Config.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(startErr, fmt.Errorf("server forced to shutdown: %w", err))
	}

	return startErr
}
