package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type AppInfo struct {
	Env     string
	Version string
	Name    string
}

// HealthHandler serves the liveness, version and readiness probes.
type HealthHandler struct {
	info   AppInfo
	checks map[string]Check
}

func NewHealthHandler(info AppInfo, checks map[string]Check) *HealthHandler {
	return &HealthHandler{info: info, checks: checks}
}

type pingResponse struct {
	Pong bool `json:"pong"`
}

type versionResponse struct {
	Env     string `json:"env"`
	Version string `json:"version"`
	Name    string `json:"name"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Ping confirms the process is alive.
//
// @Summary      Ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  pingResponse
// @Router       /health/ping [get]
func (h *HealthHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, pingResponse{Pong: true})
}

// @Summary      Running version
// @Tags         health
// @Produce      json
// @Success      200  {object}  versionResponse
// @Router       /health/version [get]
func (h *HealthHandler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, versionResponse{Env: h.info.Env, Version: h.info.Version, Name: h.info.Name})
}

// Readiness checks every configured dependency.
//
// @Summary      Readiness
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]dependencyStatus, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
