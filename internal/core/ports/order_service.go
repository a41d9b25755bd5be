package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// OrderService defines use-case operations over orders.
type OrderService interface {
	// FindForManagers returns one page of the manager queue: orders whose
	// status is not COMPLETED, ordered by id ascending.
	FindForManagers(ctx context.Context, page, size int) ([]domain.Order, int64, error)
	FindByClientID(ctx context.Context, clientID int64, page, size int) ([]domain.Order, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	// FindClientByOrderID resolves the owning client of an order.
	FindClientByOrderID(ctx context.Context, orderID int64) (*domain.Client, error)
	// Create finalizes an order for the client: the owner is set at creation
	// time, basket lines referenced by id are moved into the order's line
	// set, lines without an id are created on the spot.
	Create(ctx context.Context, clientID int64, order *domain.Order) error
	// Update applies the incoming order onto the persistent one; id and the
	// owning client are never overwritten.
	Update(ctx context.Context, orderID int64, in *domain.Order) (*domain.Order, error)
	// Delete removes the order together with its line set.
	Delete(ctx context.Context, id int64) error
}
