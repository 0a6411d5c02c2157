package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/api/metrics"
	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const msgTooManyAttempts = "Too many attempts, try again later"

// LoginThrottle limits login and registration attempts per client IP.
// A nil limiter disables the throttle. Limiter errors let the request through.
func LoginThrottle(limiter ports.LoginLimiter, m *metrics.Metrics, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			key := c.RealIP() + ":" + c.Request().Method + ":" + c.Path()
			allowed, retryAfter, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("login limiter unavailable")
				return next(c)
			}
			if !allowed {
				m.ObserveThrottled()
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return domain.TooManyRequests(msgTooManyAttempts).WithDetails(map[string]any{
					"retryAfter": retryAfter,
				})
			}
			return next(c)
		}
	}
}

