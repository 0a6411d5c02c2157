package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

func newContext(session *domain.Session) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if session != nil {
		c.Set(sessionKey, *session)
	}
	return c
}

func TestRequireRole(t *testing.T) {
	admin := &domain.Session{UserID: 1, Roles: []string{domain.RoleAdmin, domain.RoleUser}}
	user := &domain.Session{UserID: 2, Roles: []string{domain.RoleUser}}

	cases := []struct {
		name    string
		session *domain.Session
		want    domain.ErrorKind
	}{
		{"admin allowed", admin, ""},
		{"user forbidden", user, domain.KindForbidden},
		{"no session", nil, domain.KindUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
				called = true
				return nil
			})
			err := handler(newContext(tc.session))
			if got := domain.KindOf(err); got != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
			if called != (tc.want == "") {
				t.Fatalf("next called = %v", called)
			}
		})
	}
}

func TestCheckOwnershipOrAdmin(t *testing.T) {
	admin := &domain.Session{UserID: 1, Roles: []string{domain.RoleAdmin}}
	user := &domain.Session{UserID: 2, Roles: []string{domain.RoleUser}}

	cases := []struct {
		name    string
		session *domain.Session
		param   string
		want    domain.ErrorKind
		target  uint
	}{
		{"own id", user, "2", "", 2},
		{"me alias", user, "me", "", 2},
		{"other user", user, "1", domain.KindForbidden, 0},
		{"admin on other user", admin, "2", "", 2},
		{"admin me", admin, "me", "", 1},
		{"no session", nil, "2", domain.KindUnauthorized, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(tc.session)
			c.SetParamNames("id")
			c.SetParamValues(tc.param)

			var target uint
			handler := CheckOwnershipOrAdmin("id")(func(c echo.Context) error {
				target = TargetUserID(c)
				return nil
			})
			err := handler(c)
			if got := domain.KindOf(err); got != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
			if target != tc.target {
				t.Fatalf("expected target %d, got %d", tc.target, target)
			}
		})
	}
}
