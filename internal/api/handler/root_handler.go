package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler redirects the bare root to the API documentation.
type RootHandler struct {
	docsURL string
}

func NewRootHandler(docsURL string) *RootHandler {
	return &RootHandler{docsURL: docsURL}
}

// Redirect handles GET /.
func (h *RootHandler) Redirect(c echo.Context) error {
	return c.Redirect(http.StatusPermanentRedirect, h.docsURL)
}
