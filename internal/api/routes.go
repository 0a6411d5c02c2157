package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/handler"
	"github.com/filmcatalog/webservices-film/internal/api/middleware"
	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// access describes who may call a route.
type access int

const (
	public access = iota
	signedIn
	adminOnly
	ownerOrAdmin
)

// route pairs a handler with its validation schema and access policy.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	schema  *validation.Schema
	access  access
	// throttled routes get the login throttle and the random auth delay.
	throttled bool
}

type handlers struct {
	sessions  *handler.SessionHandler
	users     *handler.UserHandler
	films     *handler.FilmHandler
	persons   *handler.PersonHandler
	locations *handler.LocationHandler
	awards    *handler.AwardHandler
	health    *handler.HealthHandler
}

func apiRoutes(h handlers) []route {
	return []route{
		{method: http.MethodPost, path: "/sessions", handler: h.sessions.Login, schema: handler.LoginSchema, throttled: true},

		{method: http.MethodPost, path: "/users", handler: h.sessions.Register, schema: handler.RegisterSchema, throttled: true},
		{method: http.MethodGet, path: "/users", handler: h.users.GetAll, access: adminOnly},
		{method: http.MethodGet, path: "/users/:id", handler: h.users.GetByID, schema: handler.UserByIDSchema, access: ownerOrAdmin},
		{method: http.MethodPut, path: "/users/:id", handler: h.users.UpdateByID, schema: handler.UpdateUserSchema, access: ownerOrAdmin},
		{method: http.MethodDelete, path: "/users/:id", handler: h.users.DeleteByID, schema: handler.UserByIDSchema, access: ownerOrAdmin},

		{method: http.MethodGet, path: "/film", handler: h.films.GetAll, access: signedIn},
		{method: http.MethodPost, path: "/film", handler: h.films.Create, schema: handler.CreateFilmSchema, access: signedIn},
		{method: http.MethodGet, path: "/film/:id", handler: h.films.GetByID, schema: handler.ByIDSchema, access: signedIn},
		{method: http.MethodPut, path: "/film/:id", handler: h.films.UpdateByID, schema: handler.UpdateFilmSchema, access: signedIn},
		{method: http.MethodDelete, path: "/film/:id", handler: h.films.DeleteByID, schema: handler.ByIDSchema, access: signedIn},

		{method: http.MethodGet, path: "/persoon", handler: h.persons.GetAll, access: signedIn},
		{method: http.MethodPost, path: "/persoon", handler: h.persons.Create, schema: handler.CreatePersonSchema, access: signedIn},
		{method: http.MethodGet, path: "/persoon/:id", handler: h.persons.GetByID, schema: handler.ByIDSchema, access: signedIn},
		{method: http.MethodDelete, path: "/persoon/:id", handler: h.persons.DeleteByID, schema: handler.ByIDSchema, access: signedIn},

		{method: http.MethodGet, path: "/locatie", handler: h.locations.GetAll, access: signedIn},
		{method: http.MethodPost, path: "/locatie", handler: h.locations.Create, schema: handler.CreateLocationSchema, access: signedIn},
		{method: http.MethodGet, path: "/locatie/:id", handler: h.locations.GetByID, schema: handler.ByIDSchema, access: signedIn},
		{method: http.MethodDelete, path: "/locatie/:id", handler: h.locations.DeleteByID, schema: handler.ByIDSchema, access: signedIn},

		{method: http.MethodGet, path: "/awards", handler: h.awards.GetAll, access: signedIn},
		{method: http.MethodPost, path: "/awards", handler: h.awards.Create, schema: handler.CreateAwardSchema, access: signedIn},
		{method: http.MethodGet, path: "/awards/:id", handler: h.awards.GetByID, schema: handler.ByIDSchema, access: signedIn},
		{method: http.MethodDelete, path: "/awards/:id", handler: h.awards.DeleteByID, schema: handler.ByIDSchema, access: signedIn},

		{method: http.MethodGet, path: "/health/ping", handler: h.health.Ping},
		{method: http.MethodGet, path: "/health/version", handler: h.health.Version},
		{method: http.MethodGet, path: "/health/ready", handler: h.health.Readiness},
	}
}

// chain builds the middleware list of r in pipeline order:
// throttle, delay, authentication, role, validation, ownership.
func (r route) chain(d routeDeps) []echo.MiddlewareFunc {
	var mws []echo.MiddlewareFunc
	if r.throttled {
		mws = append(mws, d.throttle, d.delay)
	}
	if r.access != public {
		mws = append(mws, d.authenticate)
	}
	if r.access == adminOnly {
		mws = append(mws, middleware.RequireRole(domain.RoleAdmin))
	}
	mws = append(mws, d.validator.Middleware(r.schema))
	if r.access == ownerOrAdmin {
		mws = append(mws, middleware.CheckOwnershipOrAdmin("id"))
	}
	return mws
}

type routeDeps struct {
	throttle     echo.MiddlewareFunc
	delay        echo.MiddlewareFunc
	authenticate echo.MiddlewareFunc
	validator    *validation.Validator
}
