package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/core/ports"
)

// ItemHandler exposes the catalog: open reads plus an admin seeding write.
// The catalog has no business rules of its own, so the repository is
// consumed directly.
type ItemHandler struct {
	items ports.ItemRepository
}

func NewItemHandler(items ports.ItemRepository) *ItemHandler {
	return &ItemHandler{items: items}
}

// List handles GET /api/items?page=&size=.
func (h *ItemHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	items, total, err := h.items.FindAll(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(items, total, page, size))
}

// Create handles POST /api/items (admin): catalog seeding. Save upserts, so
// a request carrying an existing id replaces that item.
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item := req.toDomain()
	if err := h.items.Save(c.Request().Context(), &item); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Get handles GET /api/items/:item_id.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "item_id")
	if err != nil {
		return err
	}

	item, err := h.items.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
