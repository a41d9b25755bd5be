package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
	"github.com/shop-platform/client-service/internal/pkg/metrics"
)

// BasketHandler handles HTTP requests for the basket sub-resource under
// /api/clients/:id/basket.
type BasketHandler struct {
	clients ports.ClientService
	items   ports.ClientItemService
}

func NewBasketHandler(clients ports.ClientService, items ports.ClientItemService) *BasketHandler {
	return &BasketHandler{clients: clients, items: items}
}

// List handles GET /api/clients/:id/basket.
func (h *BasketHandler) List(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	basket, err := h.clients.FindBasketItemsByClientID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, basket)
}

// GeneralPrice handles GET /api/clients/:id/basket/generalPrice.
func (h *BasketHandler) GeneralPrice(c echo.Context) error {
	basket, err := h.basketOf(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.items.GeneralPrice(basket))
}

// GeneralWeight handles GET /api/clients/:id/basket/generalWeight.
func (h *BasketHandler) GeneralWeight(c echo.Context) error {
	basket, err := h.basketOf(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.items.GeneralWeight(basket))
}

func (h *BasketHandler) basketOf(c echo.Context) ([]domain.ClientItem, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	return h.clients.FindBasketItemsByClientID(c.Request().Context(), id)
}

// GetItem handles GET /api/clients/:id/basket/:item_id. Non-staff callers
// only see lines sitting in that client's basket; a line owned by someone
// else is indistinguishable from an absent one.
func (h *BasketHandler) GetItem(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return err
	}

	line, err := h.items.FindByID(c.Request().Context(), itemID)
	if err != nil {
		return err
	}
	if !staffRequest(c) && !(line.ClientID == clientID && line.InBasket()) {
		return domain.ErrClientItemNotFound
	}
	return c.JSON(http.StatusOK, line)
}

// AddItem handles POST /api/clients/:id/basket/:item_id.
func (h *BasketHandler) AddItem(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req clientItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	line := req.toDomain()
	if err := h.clients.AddItemToBasket(c.Request().Context(), clientID, &line); err != nil {
		return err
	}

	metrics.BasketOpsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, line)
}

// UpdateItem handles PUT /api/clients/:id/basket/:item_id.
func (h *BasketHandler) UpdateItem(c echo.Context) error {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return err
	}

	var req clientItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := req.toDomain()
	updated, err := h.items.Update(c.Request().Context(), itemID, &in)
	if err != nil {
		return err
	}

	metrics.BasketOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, updated)
}

// DeleteItem handles DELETE /api/clients/:id/basket/:item_id. Deleting an
// absent or already-removed line is a no-op.
func (h *BasketHandler) DeleteItem(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	line, err := h.items.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !staffRequest(c) && !(line.ClientID == clientID && line.InBasket()) {
		return domain.ErrClientItemNotFound
	}

	if err := h.clients.DeleteBasketItems(ctx, []domain.ClientItem{*line}, clientID); err != nil {
		return err
	}

	metrics.BasketOpsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /api/clients/:id/basket. Clearing an empty basket is
// a no-op.
func (h *BasketHandler) Clear(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	basket, err := h.clients.FindBasketItemsByClientID(ctx, id)
	if err != nil {
		return err
	}
	if err := h.clients.DeleteBasketItems(ctx, basket, id); err != nil {
		return err
	}

	metrics.BasketOpsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}
