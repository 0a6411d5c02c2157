package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/filmcatalog/webservices-film/docs"
	"github.com/filmcatalog/webservices-film/internal/api/handler"
	"github.com/filmcatalog/webservices-film/internal/api/metrics"
	"github.com/filmcatalog/webservices-film/internal/api/middleware"
	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

// maxBodySize caps request bodies before validation reads them.
const maxBodySize = "1M"

// Services groups the use cases exposed over HTTP.
type Services struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Films     ports.FilmService
	Persons   ports.PersonService
	Locations ports.LocationService
	Awards    ports.AwardService
}

// Options carries everything NewRouter needs. All fields except Services,
// Tokens and Registry are optional.
type Options struct {
	Logger   zerolog.Logger
	Services Services
	Tokens   ports.TokenVerifier
	// Limiter throttles POST /sessions and POST /users; nil disables it.
	Limiter ports.LoginLimiter
	Metrics *metrics.Metrics
	// Registry backs both the HTTP metrics middleware and GET /metrics.
	Registry *prometheus.Registry

	App          handler.AppInfo
	HealthChecks map[string]handler.Check

	AuthMaxDelay time.Duration
	CORSOrigins  []string
	CORSMaxAge   time.Duration
	ExposeStack  bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger, opts.ExposeStack)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.BodyLimit(maxBodySize))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAccept, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           int(opts.CORSMaxAge / time.Second),
	}))
	if opts.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  metrics.Namespace,
			Subsystem:  "http",
			Registerer: opts.Registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/swagger/*"
			},
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: opts.Registry,
		}))
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	h := handlers{
		sessions:  handler.NewSessionHandler(opts.Services.Auth, opts.Metrics),
		users:     handler.NewUserHandler(opts.Services.Users),
		films:     handler.NewFilmHandler(opts.Services.Films),
		persons:   handler.NewPersonHandler(opts.Services.Persons),
		locations: handler.NewLocationHandler(opts.Services.Locations),
		awards:    handler.NewAwardHandler(opts.Services.Awards),
		health:    handler.NewHealthHandler(opts.App, opts.HealthChecks),
	}
	deps := routeDeps{
		throttle:     middleware.LoginThrottle(opts.Limiter, opts.Metrics, opts.Logger),
		delay:        middleware.AuthDelay(opts.AuthMaxDelay),
		authenticate: middleware.RequireAuthentication(opts.Tokens),
		validator:    validation.New(),
	}

	g := e.Group("/api")
	for _, r := range apiRoutes(h) {
		g.Add(r.method, r.path, r.handler, r.chain(deps)...)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
