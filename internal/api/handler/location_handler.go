package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type LocationHandler struct {
	service ports.LocationService
}

func NewLocationHandler(service ports.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// @Summary      List locations
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Location]
// @Router       /locatie [get]
func (h *LocationHandler) GetAll(c echo.Context) error {
	locations, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(locations))
}

// @Summary      Get a location with the films shot there
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Location ID"
// @Success      200  {object}  domain.LocationDetail
// @Failure      404  {object}  api.errorResponse
// @Router       /locatie/{id} [get]
func (h *LocationHandler) GetByID(c echo.Context) error {
	location, err := h.service.GetByID(c.Request().Context(), validation.Params[idParams](c).value())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, location)
}

// @Summary      Create a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLocationRequest  true  "Location"
// @Success      201   {object}  domain.Location
// @Failure      400   {object}  api.errorResponse
// @Router       /locatie [post]
func (h *LocationHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	req := validation.Body[createLocationRequest](c)

	location, err := h.service.Create(c.Request().Context(), ports.CreateLocationInput{
		Street:  req.Straat,
		City:    req.Stad,
		Country: req.Land,
		Photo:   req.Foto,
	}, session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, location)
}

// @Summary      Delete a location
// @Tags         locations
// @Security     BearerAuth
// @Param        id   path  int  true  "Location ID"
// @Success      204
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Failure      409  {object}  api.errorResponse
// @Router       /locatie/{id} [delete]
func (h *LocationHandler) DeleteByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), validation.Params[idParams](c).value(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
