package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type PersonHandler struct {
	service ports.PersonService
}

func NewPersonHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// @Summary      List persons
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Person]
// @Router       /persoon [get]
func (h *PersonHandler) GetAll(c echo.Context) error {
	persons, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(persons))
}

// @Summary      Get a person with their roles
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Person ID"
// @Success      200  {object}  domain.PersonDetail
// @Failure      404  {object}  api.errorResponse
// @Router       /persoon/{id} [get]
func (h *PersonHandler) GetByID(c echo.Context) error {
	person, err := h.service.GetByID(c.Request().Context(), validation.Params[idParams](c).value())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, person)
}

// @Summary      Create a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPersonRequest  true  "Person"
// @Success      201   {object}  domain.Person
// @Failure      400   {object}  api.errorResponse
// @Router       /persoon [post]
func (h *PersonHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	req := validation.Body[createPersonRequest](c)

	person, err := h.service.Create(c.Request().Context(), ports.CreatePersonInput{
		FirstName: req.Voornaam,
		LastName:  req.Achternaam,
		BirthDate: req.GeboorteDatum,
		Country:   req.Land,
	}, session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, person)
}

// @Summary      Delete a person
// @Tags         persons
// @Security     BearerAuth
// @Param        id   path  int  true  "Person ID"
// @Success      204
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Failure      409  {object}  api.errorResponse
// @Router       /persoon/{id} [delete]
func (h *PersonHandler) DeleteByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), validation.Params[idParams](c).value(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
