package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const envProduction = "production"

type Config struct {
	Port            string        `env:"PORT, default=9000"`
	Env             string        `env:"ENV, default=development"`
	AppName         string        `env:"APP_NAME, default=webservices-film"`
	AppVersion      string        `env:"APP_VERSION, default=dev"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
	LogPretty       bool          `env:"LOG_PRETTY, default=false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Redis    RedisConfig
	Mongo    MongoConfig
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER, default=postgres"`
	DSN             string        `env:"DB_DSN, default=host=localhost user=film password=film dbname=film port=5432 sslmode=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE, default=true"`
}

type AuthConfig struct {
	JWTSecret       string        `env:"JWT_SECRET, required"`
	JWTIssuer       string        `env:"JWT_ISSUER, default=webservices-film"`
	JWTAudience     string        `env:"JWT_AUDIENCE, default=webservices-film"`
	JWTExpiration   time.Duration `env:"JWT_EXPIRATION, default=1h"`
	ArgonHashLength uint32        `env:"ARGON_HASH_LENGTH, default=32"`
	ArgonTimeCost   uint32        `env:"ARGON_TIME_COST, default=6"`
	ArgonMemoryCost uint32        `env:"ARGON_MEMORY_COST, default=131072"`
	MaxDelay        time.Duration `env:"AUTH_MAX_DELAY, default=5s"`
	LoginAttempts   int           `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	LoginWindow     time.Duration `env:"LOGIN_WINDOW, default=1m"`
}

type CORSConfig struct {
	Origins []string      `env:"CORS_ORIGINS, default=http://localhost:5173"`
	MaxAge  time.Duration `env:"CORS_MAX_AGE, default=3h"`
}

// RedisConfig is optional: an empty address disables the login throttle.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MongoConfig is optional: an empty URI sends audit events to the log instead.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=webservices_film"`
	Workers  int    `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration through lookuper. Pass nil to read the process
// environment.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return &cfg, nil
}

// IsProduction reports whether stack traces and debug output must be hidden.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, envProduction)
}
