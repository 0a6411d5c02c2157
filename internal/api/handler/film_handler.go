package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

// FilmHandler handles HTTP requests for films.
type FilmHandler struct {
	service ports.FilmService
}

func NewFilmHandler(service ports.FilmService) *FilmHandler {
	return &FilmHandler{service: service}
}

// GetAll lists every film with the name of the user who added it.
//
// @Summary      List films
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Film]
// @Failure      401  {object}  api.errorResponse
// @Router       /film [get]
func (h *FilmHandler) GetAll(c echo.Context) error {
	films, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(films))
}

// GetByID returns a film with its director, actors, awards and locations.
//
// @Summary      Get a film
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Film ID"
// @Success      200  {object}  domain.FilmDetail
// @Failure      400  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /film/{id} [get]
func (h *FilmHandler) GetByID(c echo.Context) error {
	id := validation.Params[idParams](c).value()
	film, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, film)
}

// Create adds a film. Actors, awards and locations are stored in the same
// transaction.
//
// @Summary      Create a film
// @Tags         films
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFilmRequest  true  "Film"
// @Success      201   {object}  domain.FilmDetail
// @Failure      400   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /film [post]
func (h *FilmHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	req := validation.Body[createFilmRequest](c)

	film, err := h.service.Create(c.Request().Context(), req.toInput(), session)
	if err != nil {
		return err
	}
	detail, err := h.service.GetByID(c.Request().Context(), film.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// UpdateByID changes a film. Admin only.
//
// @Summary      Update a film
// @Tags         films
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Film ID"
// @Param        body  body      updateFilmRequest  true  "Fields to change"
// @Success      200   {object}  domain.FilmDetail
// @Failure      400   {object}  api.errorResponse
// @Failure      403   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /film/{id} [put]
func (h *FilmHandler) UpdateByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id := validation.Params[idParams](c).value()
	req := validation.Body[updateFilmRequest](c)

	if _, err := h.service.UpdateByID(c.Request().Context(), id, req.toInput(), session); err != nil {
		return err
	}
	detail, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// DeleteByID removes a film with its actor links, awards and location links. Admin only.
//
// @Summary      Delete a film
// @Tags         films
// @Security     BearerAuth
// @Param        id   path  int  true  "Film ID"
// @Success      204
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /film/{id} [delete]
func (h *FilmHandler) DeleteByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id := validation.Params[idParams](c).value()
	if err := h.service.DeleteByID(c.Request().Context(), id, session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
