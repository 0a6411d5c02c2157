package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

const (
	targetUserKey = "target_user_id"

	msgRoleForbidden  = "You are not allowed to view this part of the application"
	msgOwnerForbidden = "You are not allowed to view this user's information"
)

// RequireRole rejects sessions that do not carry role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := Session(c)
			if !ok {
				return domain.Unauthorized(msgSignInRequired)
			}
			if !session.HasRole(role) {
				return domain.Forbidden(msgRoleForbidden)
			}
			return next(c)
		}
	}
}

// CheckOwnershipOrAdmin lets the request through when the user id in the
// path parameter is the caller's own id, or the caller is an admin. "me"
// stands for the caller. The resolved id is available through TargetUserID.
func CheckOwnershipOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := Session(c)
			if !ok {
				return domain.Unauthorized(msgSignInRequired)
			}

			raw := c.Param(param)
			var id uint
			if raw == "me" {
				id = session.UserID
			} else {
				n, err := strconv.ParseUint(raw, 10, 0)
				if err != nil {
					return domain.Forbidden(msgOwnerForbidden)
				}
				id = uint(n)
			}

			if id != session.UserID && !session.IsAdmin() {
				return domain.Forbidden(msgOwnerForbidden)
			}

			c.Set(targetUserKey, id)
			return next(c)
		}
	}
}

// TargetUserID returns the id resolved by CheckOwnershipOrAdmin.
func TargetUserID(c echo.Context) uint {
	id, _ := c.Get(targetUserKey).(uint)
	return id
}
