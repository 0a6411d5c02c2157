package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/middleware"
	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// listResponse wraps collections as {"items": [...]}.
type listResponse[T any] struct {
	Items []T `json:"items"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items}
}

// ctxSession returns the session set by RequireAuthentication. Its absence
// means the route was registered without authentication.
func ctxSession(c echo.Context) (domain.Session, error) {
	session, ok := middleware.Session(c)
	if !ok {
		return domain.Session{}, domain.Unauthorized("You need to be signed in")
	}
	return session, nil
}
