package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
//
// Lookup-by-unique-column methods (FindByLogin, FindByConfirmationCode)
// return (nil, nil) when nothing matches; absence is not an error there,
// callers translate nil to 404. FindByID returns domain.ErrClientNotFound.
type ClientRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	// FindAll returns one page of clients ordered by id ascending plus the
	// total count. page is 0-based; no implicit size cap.
	FindAll(ctx context.Context, page, size int) ([]domain.Client, int64, error)
	FindByLogin(ctx context.Context, login string) (*domain.Client, error)
	FindByConfirmationCode(ctx context.Context, code string) (*domain.Client, error)
	// Save upserts the client, assigning a server-side id when absent.
	Save(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ClientItemRepository defines persistence for basket and order lines.
// A line with OrderID == 0 belongs to its client's basket; setting OrderID
// moves it into the order's line set.
type ClientItemRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.ClientItem, error)
	// FindBasketByClientID issues an explicit query for the client's basket
	// (never relies on lazy collection hydration).
	FindBasketByClientID(ctx context.Context, clientID int64) ([]domain.ClientItem, error)
	// FindByOrderIDs batch-loads the lines of several orders, keyed by order id.
	FindByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]domain.ClientItem, error)
	Save(ctx context.Context, item *domain.ClientItem) error
	// Delete removes lines by id; unknown ids are ignored.
	Delete(ctx context.Context, ids ...int64) error
	DeleteByClientID(ctx context.Context, clientID int64) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
