package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
	"github.com/shop-platform/client-service/internal/pkg/metrics"
)

// ClientHandler handles HTTP requests for client accounts.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/clients?page=&size=.
func (h *ClientHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	clients, total, err := h.clients.FindAll(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(clients, total, page, size))
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.clients.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// GetByLogin handles GET /api/clients/byLogin/:login.
func (h *ClientHandler) GetByLogin(c echo.Context) error {
	client, err := h.clients.FindByLogin(c.Request().Context(), c.Param("login"))
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	return c.JSON(http.StatusOK, client)
}

// GetByConfirmationCode handles GET /api/clients/byConfirmCode/:code.
func (h *ClientHandler) GetByConfirmationCode(c echo.Context) error {
	client, err := h.clients.FindByConfirmationCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /api/clients. Registration is open: this is how new
// clients enter the system.
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client := req.toDomain()
	if err := h.clients.Save(c.Request().Context(), client); err != nil {
		return err
	}

	metrics.ClientsRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.clients.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/clients/:id. Deleting an absent client is a
// no-op.
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
