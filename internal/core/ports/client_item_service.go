package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// ClientItemService defines operations on individual basket lines.
type ClientItemService interface {
	// GeneralPrice sums item.Price * quantity over the basket. An empty
	// basket yields exactly 0.
	GeneralPrice(basket []domain.ClientItem) float64
	// GeneralWeight sums item.Weight * quantity over the basket.
	GeneralWeight(basket []domain.ClientItem) float64
	FindByID(ctx context.Context, id int64) (*domain.ClientItem, error)
	Save(ctx context.Context, item *domain.ClientItem) error
	// Update applies the incoming line onto the persistent one (id is never
	// overwritten) and saves.
	Update(ctx context.Context, id int64, in *domain.ClientItem) (*domain.ClientItem, error)
}
