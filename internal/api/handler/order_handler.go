package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
	"github.com/shop-platform/client-service/internal/pkg/metrics"
)

// OrderHandler handles HTTP requests for orders, both the per-client
// sub-resource and the staff views.
type OrderHandler struct {
	orders  ports.OrderService
	clients ports.ClientService
}

func NewOrderHandler(orders ports.OrderService, clients ports.ClientService) *OrderHandler {
	return &OrderHandler{orders: orders, clients: clients}
}

// ListByClient handles GET /api/clients/:id/orders?page=&size=.
func (h *OrderHandler) ListByClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	page, size := pageParams(c)

	orders, total, err := h.orders.FindByClientID(c.Request().Context(), id, page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(orders, total, page, size))
}

// Get handles GET /api/clients/:id/orders/:order_id. Non-staff callers only
// see their own orders; someone else's order is indistinguishable from an
// absent one.
func (h *OrderHandler) Get(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}

	order, err := h.orders.FindByID(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	if !staffRequest(c) && order.ClientID != clientID {
		return domain.ErrOrderNotFound
	}
	return c.JSON(http.StatusOK, order)
}

// Create handles POST /api/clients/:id/orders. Basket lines referenced by id
// move into the order; lines without an id are created on the spot.
func (h *OrderHandler) Create(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order := req.toDomain()
	if err := h.orders.Create(c.Request().Context(), clientID, order); err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(order.OrderStatus)).Inc()
	return c.JSON(http.StatusCreated, order)
}

// Update handles PUT /api/clients/:id/orders/:order_id. Any authenticated
// principal may update an order; the owning client never changes.
func (h *OrderHandler) Update(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}

	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.orders.Update(c.Request().Context(), orderID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/clients/:id/orders/:order_id.
func (h *OrderHandler) Delete(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}

	if err := h.orders.Delete(c.Request().Context(), orderID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /api/clients/:id/orders: every order of the client is
// removed, one by one.
func (h *OrderHandler) Clear(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	orders, err := h.clients.FindOrdersByClientID(ctx, id)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if err := h.orders.Delete(ctx, order.ID); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// ManagerQueue handles GET /api/clients/managerOrders?page=&size=: orders
// not yet COMPLETED, for staff.
func (h *OrderHandler) ManagerQueue(c echo.Context) error {
	page, size := pageParams(c)

	orders, total, err := h.orders.FindForManagers(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(orders, total, page, size))
}

// GetByID handles GET /api/clients/orders/:order_id (staff).
func (h *OrderHandler) GetByID(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}

	order, err := h.orders.FindByID(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// GetClient handles GET /api/clients/orders/:order_id/client (staff): the
// owning client of an order.
func (h *OrderHandler) GetClient(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}

	client, err := h.orders.FindClientByOrderID(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}
