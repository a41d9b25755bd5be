package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// ItemRepository defines persistence for the catalog: open reads plus the
// admin seeding write.
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	FindAll(ctx context.Context, page, size int) ([]domain.Item, int64, error)
	Save(ctx context.Context, item *domain.Item) error
}
