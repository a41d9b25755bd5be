package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/api/middleware"
	"github.com/shop-platform/client-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for errors the per-resource
// interceptors do not translate.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known
// domain errors to status codes, logs unexpected ones without leaking
// details, and renders the {"error": "<message>"} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Validation failures echo the rejected payload back, whether or not
		// the route carries its own interceptor.
		var bad *middleware.BadRequestError
		if errors.As(err, &bad) {
			log.Warn().
				Err(bad.Reason).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request rejected")
			_ = c.JSON(http.StatusBadRequest, bad.Payload)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrAccountNotConfirmed):
		return http.StatusUnauthorized, "account not confirmed"
	case errors.Is(err, domain.ErrLoginTaken):
		return http.StatusConflict, "login already taken"
	// Lookups that escape an interceptor (routes without one).
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
