package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type AwardHandler struct {
	service ports.AwardService
}

func NewAwardHandler(service ports.AwardService) *AwardHandler {
	return &AwardHandler{service: service}
}

// @Summary      List awards
// @Tags         awards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Award]
// @Router       /awards [get]
func (h *AwardHandler) GetAll(c echo.Context) error {
	awards, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(awards))
}

// @Summary      Get an award
// @Tags         awards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Award ID"
// @Success      200  {object}  domain.Award
// @Failure      404  {object}  api.errorResponse
// @Router       /awards/{id} [get]
func (h *AwardHandler) GetByID(c echo.Context) error {
	award, err := h.service.GetByID(c.Request().Context(), validation.Params[idParams](c).value())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, award)
}

// @Summary      Create an award for a film
// @Tags         awards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAwardRequest  true  "Award"
// @Success      201   {object}  domain.Award
// @Failure      400   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /awards [post]
func (h *AwardHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	req := validation.Body[createAwardRequest](c)

	award, err := h.service.Create(c.Request().Context(), ports.CreateAwardInput{
		Name:   req.Naam,
		Year:   req.Jaar,
		FilmID: req.FilmID,
	}, session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, award)
}

// @Summary      Delete an award
// @Tags         awards
// @Security     BearerAuth
// @Param        id   path  int  true  "Award ID"
// @Success      204
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /awards/{id} [delete]
func (h *AwardHandler) DeleteByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), validation.Params[idParams](c).value(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
