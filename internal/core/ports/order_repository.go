package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Returned orders
// are fully hydrated with their line sets.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	// FindByClientID returns one page of the client's orders ordered by id
	// ascending plus the total count. page is 0-based.
	FindByClientID(ctx context.Context, clientID int64, page, size int) ([]domain.Order, int64, error)
	// FindAllByClientID returns every order of the client, unpaginated.
	FindAllByClientID(ctx context.Context, clientID int64) ([]domain.Order, error)
	// FindForManagers returns one page of orders whose status is not
	// COMPLETED, ordered by id ascending.
	FindForManagers(ctx context.Context, page, size int) ([]domain.Order, int64, error)
	Save(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int64) error
}
