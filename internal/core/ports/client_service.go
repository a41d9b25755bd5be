package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// ClientService defines use-case operations over clients and their baskets.
type ClientService interface {
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	FindAll(ctx context.Context, page, size int) ([]domain.Client, int64, error)
	// FindByLogin and FindByConfirmationCode return (nil, nil) on no match.
	FindByLogin(ctx context.Context, login string) (*domain.Client, error)
	FindByConfirmationCode(ctx context.Context, code string) (*domain.Client, error)
	// FindBasketItemsByClientID materializes the client's basket; fails with
	// domain.ErrClientNotFound when the client is absent.
	FindBasketItemsByClientID(ctx context.Context, id int64) ([]domain.ClientItem, error)
	// FindOrdersByClientID materializes all of the client's orders; fails
	// with domain.ErrClientNotFound when the client is absent.
	FindOrdersByClientID(ctx context.Context, id int64) ([]domain.Order, error)
	// Save is the dual-purpose create/update collapsed into one call,
	// disambiguated by login lookup: no login match means registration
	// (roles default to {USER} when empty); a match means update, and a
	// pending confirmation code plus a raw password triggers the
	// confirm-registration transition (hash password, clear code).
	Save(ctx context.Context, client *domain.Client) error
	// Update applies the incoming fields onto the persistent client (id is
	// never overwritten), re-attaches the current basket and order
	// collections, and saves.
	Update(ctx context.Context, id int64, in *domain.Client) (*domain.Client, error)
	// Delete hard-deletes the client together with its basket lines and orders.
	Delete(ctx context.Context, id int64) error
	// DeleteBasketItems removes the given lines from the client's basket by
	// id equality; ids not present in the basket are ignored.
	DeleteBasketItems(ctx context.Context, items []domain.ClientItem, clientID int64) error
	// AddItemToBasket re-attaches the client's collections and places the
	// new line in the basket.
	AddItemToBasket(ctx context.Context, clientID int64, item *domain.ClientItem) error
}
