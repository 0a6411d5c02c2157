package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/api/middleware"
	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetAll lists every user. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.User]
// @Failure      401  {object}  api.errorResponse
// @Failure      403  {object}  api.errorResponse
// @Router       /users [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(users))
}

// GetByID returns one user; "me" is the signed-in user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID or me"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), middleware.TargetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateByID changes the name and/or email of a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID or me"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  api.errorResponse
// @Failure      403   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	req := validation.Body[updateUserRequest](c)

	user, err := h.service.UpdateByID(c.Request().Context(), middleware.TargetUserID(c), ports.UpdateUserInput{
		Name:  req.Naam,
		Email: req.Email,
	}, session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteByID removes a user. Users may delete themselves; admins anyone.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID or me"
// @Success      204
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteByID(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), middleware.TargetUserID(c), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

