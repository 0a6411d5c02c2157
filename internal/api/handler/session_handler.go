package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/metrics"
	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type SessionHandler struct {
	authService ports.AuthService
	metrics     *metrics.Metrics
}

func NewSessionHandler(authService ports.AuthService, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{authService: authService, metrics: m}
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Sign in
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      401   {object}  api.errorResponse
// @Failure      429   {object}  api.errorResponse
// @Router       /sessions [post]
func (h *SessionHandler) Login(c echo.Context) error {
	req := validation.Body[loginRequest](c)

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	h.metrics.ObserveAuth("login", err == nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      429   {object}  api.errorResponse
// @Router       /users [post]
func (h *SessionHandler) Register(c echo.Context) error {
	req := validation.Body[registerRequest](c)

	token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Naam,
		Email:    req.Email,
		Password: req.Password,
	})
	h.metrics.ObserveAuth("register", err == nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
