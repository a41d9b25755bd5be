package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// BadRequestError aborts a handler after a failed payload validation. The
// rejected payload is echoed back unmodified as the 400 response body.
type BadRequestError struct {
	Payload any
	Reason  error
}

func (e *BadRequestError) Error() string {
	if e.Reason != nil {
		return "invalid payload: " + e.Reason.Error()
	}
	return "invalid payload"
}

func (e *BadRequestError) Unwrap() error { return e.Reason }

// InterceptErrors converts the two cross-cutting failure modes of lookup
// handlers into their canonical responses, so individual handlers stay free
// of per-error branching:
//
//   - a failed lookup (any error wrapping domain.ErrNotFound) becomes a 404
//     with a null body;
//   - a BadRequestError becomes a 400 echoing the rejected payload.
//
// idParam names the path parameter identifying the resource, logged with
// the failure. Everything else passes through to the global error handler.
func InterceptErrors(log zerolog.Logger, resource, idParam string) echo.MiddlewareFunc {
	return intercept(log, resource, idParam, func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, nil)
	})
}

// InterceptDeleteErrors is the delete-endpoint variant: a missing target is
// swallowed and the request still succeeds with 204, making deletes
// idempotent. Validation failures behave as in InterceptErrors.
func InterceptDeleteErrors(log zerolog.Logger, resource, idParam string) echo.MiddlewareFunc {
	return intercept(log, resource, idParam, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
}

func intercept(log zerolog.Logger, resource, idParam string, onNotFound echo.HandlerFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var bad *BadRequestError
			if errors.As(err, &bad) {
				log.Warn().
					Str("resource", resource).
					Str(idParam, c.Param(idParam)).
					Err(bad.Reason).
					Msg("request payload rejected")
				return c.JSON(http.StatusBadRequest, bad.Payload)
			}

			if errors.Is(err, domain.ErrNotFound) {
				log.Warn().
					Str("resource", resource).
					Str(idParam, c.Param(idParam)).
					Err(err).
					Msg("lookup failed")
				return onNotFound(c)
			}

			return err
		}
	}
}
