package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Code    domain.ErrorKind `json:"code"`
	Message string           `json:"message"`
	Details map[string]any   `json:"details,omitempty"`
	Stack   string           `json:"stack,omitempty"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidationFailed: http.StatusBadRequest,
	domain.KindUnauthorized:     http.StatusUnauthorized,
	domain.KindForbidden:        http.StatusForbidden,
	domain.KindNotFound:         http.StatusNotFound,
	domain.KindConflict:         http.StatusConflict,
	domain.KindTooManyRequests:  http.StatusTooManyRequests,
	domain.KindInternal:         http.StatusInternalServerError,
}

var statusKind = map[int]domain.ErrorKind{
	http.StatusBadRequest:      domain.KindValidationFailed,
	http.StatusUnauthorized:    domain.KindUnauthorized,
	http.StatusForbidden:       domain.KindForbidden,
	http.StatusNotFound:        domain.KindNotFound,
	http.StatusConflict:        domain.KindConflict,
	http.StatusTooManyRequests: domain.KindTooManyRequests,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders *domain.ServiceError with the status of its kind.
//   - Maps Echo's own errors (404 route, 405, body limit) onto the same envelope.
//   - Logs unexpected errors without leaking details to the client.
//
// Stack traces are only included when exposeStack is true.
func NewHTTPErrorHandler(log zerolog.Logger, exposeStack bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if !exposeStack {
			body.Stack = ""
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	if se, ok := domain.AsServiceError(err); ok {
		status, known := kindStatus[se.Kind]
		if !known {
			status = http.StatusInternalServerError
		}
		if status == http.StatusInternalServerError {
			logUnhandled(log, err, c)
		}
		return status, errorResponse{Code: se.Kind, Message: se.Message, Details: se.Details, Stack: se.Stack()}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound && errors.Is(he, echo.ErrNotFound) {
			return he.Code, errorResponse{Code: domain.KindNotFound, Message: "Unknown resource: " + c.Request().URL.Path}
		}
		kind, ok := statusKind[he.Code]
		if !ok {
			kind = domain.ErrorKind(strings.ReplaceAll(strings.ToUpper(http.StatusText(he.Code)), " ", "_"))
		}
		return he.Code, errorResponse{Code: kind, Message: fmt.Sprintf("%v", he.Message)}
	}

	logUnhandled(log, err, c)
	return http.StatusInternalServerError, errorResponse{
		Code:    domain.KindInternal,
		Message: "Internal server error",
		Stack:   err.Error(),
	}
}

func logUnhandled(log zerolog.Logger, err error, c echo.Context) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
