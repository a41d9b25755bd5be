package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginResponse struct {
	Token  string         `json:"token"`
	Client *domain.Client `json:"client"`
}

// Login handles POST /api/auth/login: verifies credentials and returns a
// signed bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, client, err := h.auth.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, Client: client})
}
