package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/api/middleware"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// pathID parses the named path parameter as an id.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// pageParams reads the page and size query parameters. Pages are 0-based.
func pageParams(c echo.Context) (page, size int) {
	page, size = defaultPage, defaultSize
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 {
		size = v
	}
	return page, size
}

// staffRequest reports whether the caller is an authenticated MANAGER or
// ADMIN. Staff bypass ownership checks on sub-resource lookups.
func staffRequest(c echo.Context) bool {
	p := middleware.Principal(c)
	return p != nil && p.IsStaff()
}

// bindAndValidate binds the request body into req and validates it. A failed
// validation aborts with a BadRequestError so the rejected payload is echoed
// back as the 400 body.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return &middleware.BadRequestError{Payload: req, Reason: err}
	}
	return nil
}
