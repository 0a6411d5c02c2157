package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const (
	sessionKey = "session"

	msgSignInRequired = "You need to be signed in"
	msgInvalidToken   = "Invalid authentication token"
)

// RequireAuthentication verifies the bearer token and stores the resulting
// domain.Session on the context.
func RequireAuthentication(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.Unauthorized(msgSignInRequired)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return domain.Unauthorized(msgInvalidToken)
			}

			session, err := verifier.Verify(parts[1])
			if err != nil {
				return domain.Unauthorized(msgInvalidToken).Wrap(err)
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// Session returns the session stored by RequireAuthentication.
func Session(c echo.Context) (domain.Session, bool) {
	s, ok := c.Get(sessionKey).(domain.Session)
	return s, ok
}
