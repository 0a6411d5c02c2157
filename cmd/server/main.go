package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/api"
	"github.com/filmcatalog/webservices-film/internal/pkg/config"
	"github.com/filmcatalog/webservices-film/pkg/logger"
)

// @title                       Film catalog API
// @version                     1.0
// @description                 CRUD API for films, persons, filming locations, awards and users.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// boot logs until the configured logger exists
	boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		boot.Fatal().Err(err).Msg("failed to read .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, nil)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Fields: map[string]string{"app": cfg.AppName, "version": cfg.AppVersion},
	})

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise")
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	a.audit.Start(workerCtx)

	e := api.NewRouter(a.router)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}

	a.audit.Stop()
	cancelWorkers()
	a.close(shutdownCtx)
	log.Info().Msg("server stopped gracefully")
}
