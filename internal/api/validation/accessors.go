package validation

import (
	"github.com/labstack/echo/v4"
)

// Params returns the validated path parameters of the current request.
// It panics when the route has no matching Params schema.
func Params[T any](c echo.Context) *T {
	return c.Get(ctxParams).(*T)
}

// Query returns the validated query parameters.
func Query[T any](c echo.Context) *T {
	return c.Get(ctxQuery).(*T)
}

// Body returns the validated JSON body.
func Body[T any](c echo.Context) *T {
	return c.Get(ctxBody).(*T)
}

// ID parses a value that passed the posint rule.
func ID(raw string) uint {
	n, _ := parsePosInt(raw)
	return n
}
