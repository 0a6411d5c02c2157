package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	gormdb "github.com/filmcatalog/webservices-film/internal/infrastructure/db/gorm"
	"github.com/filmcatalog/webservices-film/internal/pkg/config"
	"github.com/filmcatalog/webservices-film/internal/pkg/password"
	"github.com/filmcatalog/webservices-film/pkg/logger"
)

var migrateOnly = flag.Bool("migrate-only", false, "Run DB migrations and exit without seeding")

func main() {
	flag.Parse()

	boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		boot.Fatal().Err(err).Msg("failed to read .env")
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx, nil)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if err := run(ctx, cfg, log, *migrateOnly); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

// run migrates the schema and, unless migrateOnly is set, inserts the
// fixture data. Running it twice leaves the same rows.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, migrateOnly bool) error {
	db, err := gormdb.Connect(ctx, gormdb.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := gormdb.Close(db); err != nil {
			log.Error().Err(err).Msg("database close")
		}
	}()

	if err := gormdb.AutoMigrate(db); err != nil {
		return err
	}
	log.Info().Msg("migrations completed")
	if migrateOnly {
		return nil
	}

	hasher := password.NewHasher(password.Params{
		HashLength: cfg.Auth.ArgonHashLength,
		TimeCost:   cfg.Auth.ArgonTimeCost,
		MemoryCost: cfg.Auth.ArgonMemoryCost,
	})
	if err := gormdb.Seed(ctx, db, hasher.Hash); err != nil {
		return err
	}
	log.Info().Msg("seeding completed")
	return nil
}
