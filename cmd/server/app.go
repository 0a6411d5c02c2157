package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	gormio "gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/api"
	"github.com/filmcatalog/webservices-film/internal/api/handler"
	"github.com/filmcatalog/webservices-film/internal/api/metrics"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
	"github.com/filmcatalog/webservices-film/internal/core/service"
	gormdb "github.com/filmcatalog/webservices-film/internal/infrastructure/db/gorm"
	mongodb "github.com/filmcatalog/webservices-film/internal/infrastructure/db/mongo"
	redisdb "github.com/filmcatalog/webservices-film/internal/infrastructure/db/redis"
	"github.com/filmcatalog/webservices-film/internal/infrastructure/queue"
	"github.com/filmcatalog/webservices-film/internal/pkg/config"
	"github.com/filmcatalog/webservices-film/internal/pkg/password"
	"github.com/filmcatalog/webservices-film/internal/pkg/token"
)

// app owns every long-lived resource of the server process.
type app struct {
	cfg *config.Config
	log zerolog.Logger

	db    *gormio.DB
	redis *goredis.Client
	mongo *mongodriver.Client

	audit  *queue.Dispatcher
	router api.Options
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	db, err := gormdb.Connect(ctx, gormdb.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, log)
	if err != nil {
		return nil, err
	}
	a.db = db
	log.Info().Str("driver", cfg.Database.Driver).Msg("database connected")

	if cfg.Database.AutoMigrate {
		if err := gormdb.AutoMigrate(db); err != nil {
			a.close(ctx)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error { return gormdb.Ping(ctx, db) },
	}

	var limiter ports.LoginLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			a.close(ctx)
			return nil, err
		}
		a.redis = rdb
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Auth.LoginAttempts, cfg.Auth.LoginWindow)
		checks["redis"] = func(ctx context.Context) error { return redisdb.Ping(ctx, rdb) }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttle enabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	var sink ports.AuditSink = queue.NewLogSink(log)
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  cfg.AppName,
		})
		if err != nil {
			a.close(ctx)
			return nil, err
		}
		a.mongo = client
		repo := mongodb.NewAuditRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			a.close(ctx)
			return nil, err
		}
		sink = repo
		checks["mongodb"] = func(ctx context.Context) error { return mongodb.Ping(ctx, mdb) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail stored in mongodb")
	}
	a.audit = queue.NewDispatcher(cfg.Mongo.Workers, sink, m, log)

	hasher := password.NewHasher(password.Params{
		HashLength: cfg.Auth.ArgonHashLength,
		TimeCost:   cfg.Auth.ArgonTimeCost,
		MemoryCost: cfg.Auth.ArgonMemoryCost,
	})
	tokens, err := token.NewManager(token.Config{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.JWTIssuer,
		Audience:   cfg.Auth.JWTAudience,
		Expiration: cfg.Auth.JWTExpiration,
	})
	if err != nil {
		a.close(ctx)
		return nil, err
	}

	services, err := newServices(db, hasher, tokens, a.audit, log)
	if err != nil {
		a.close(ctx)
		return nil, err
	}

	a.router = api.Options{
		Logger:   log,
		Services: services,
		Tokens:   tokens,
		Limiter:  limiter,
		Metrics:  m,
		Registry: reg,
		App: handler.AppInfo{
			Env:     cfg.Env,
			Version: cfg.AppVersion,
			Name:    cfg.AppName,
		},
		HealthChecks: checks,
		AuthMaxDelay: cfg.Auth.MaxDelay,
		CORSOrigins:  cfg.CORS.Origins,
		CORSMaxAge:   cfg.CORS.MaxAge,
		ExposeStack:  !cfg.IsProduction(),
	}
	return a, nil
}

func newServices(db *gormio.DB, hasher ports.PasswordHasher, tokens ports.TokenIssuer, audit ports.AuditRecorder, log zerolog.Logger) (api.Services, error) {
	users := gormdb.NewUserRepository(db)
	films := gormdb.NewFilmRepository(db)
	persons := gormdb.NewPersonRepository(db)
	locations := gormdb.NewLocationRepository(db)
	awards := gormdb.NewAwardRepository(db)
	tx := gormdb.NewTransactor(db)

	auth, err := service.NewAuthService(users, hasher, tokens, audit, log)
	if err != nil {
		return api.Services{}, err
	}
	return api.Services{
		Auth:  auth,
		Users: service.NewUserService(users, audit, log),
		Films: service.NewFilmService(service.FilmServiceDeps{
			Films:      films,
			Persons:    persons,
			Locations:  locations,
			Awards:     awards,
			Transactor: tx,
			Audit:      audit,
		}, log),
		Persons:   service.NewPersonService(persons, tx, audit, log),
		Locations: service.NewLocationService(locations, tx, audit, log),
		Awards:    service.NewAwardService(awards, films, audit, log),
	}, nil
}

// close releases the connections in reverse order of creation.
func (a *app) close(ctx context.Context) {
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.log.Error().Err(err).Msg("mongodb disconnect")
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error().Err(err).Msg("redis close")
		}
	}
	if a.db != nil {
		if err := gormdb.Close(a.db); err != nil {
			a.log.Error().Err(err).Msg("database close")
		}
	}
}
