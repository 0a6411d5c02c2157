package middleware

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/labstack/echo/v4"
)

// AuthDelay waits a random duration in [0, max) before the request
// continues. It is applied to login and registration.
func AuthDelay(max time.Duration) echo.MiddlewareFunc {
	return authDelay(max, sleepContext)
}

func authDelay(max time.Duration, sleep func(context.Context, time.Duration) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if max > 0 {
				if err := sleep(c.Request().Context(), rand.N(max)); err != nil {
					// the client went away during the delay
					return nil
				}
			}
			return next(c)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
