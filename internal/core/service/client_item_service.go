package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

// ClientItemService implements operations on individual basket lines.
type ClientItemService struct {
	items ports.ClientItemRepository
	log   zerolog.Logger
}

func NewClientItemService(items ports.ClientItemRepository, log zerolog.Logger) *ClientItemService {
	return &ClientItemService{items: items, log: log}
}

// GeneralPrice sums item.Price * quantity over the basket. The sum is
// order-independent; an empty basket yields exactly 0.
func (s *ClientItemService) GeneralPrice(basket []domain.ClientItem) float64 {
	var total float64
	for _, line := range basket {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

// GeneralWeight sums item.Weight * quantity over the basket.
func (s *ClientItemService) GeneralWeight(basket []domain.ClientItem) float64 {
	var total float64
	for _, line := range basket {
		total += line.Item.Weight * float64(line.Quantity)
	}
	return total
}

func (s *ClientItemService) FindByID(ctx context.Context, id int64) (*domain.ClientItem, error) {
	s.log.Debug().Int64("item_id", id).Msg("find client item by id")
	return s.items.FindByID(ctx, id)
}

func (s *ClientItemService) Save(ctx context.Context, item *domain.ClientItem) error {
	s.log.Info().Int64("item_id", item.ID).Msg("saving client item")
	return s.items.Save(ctx, item)
}

// Update applies the incoming line onto the persistent one. The line id and
// its basket/order attachment are never overwritten.
func (s *ClientItemService) Update(ctx context.Context, id int64, in *domain.ClientItem) (*domain.ClientItem, error) {
	persistent, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	persistent.Item = in.Item
	persistent.Quantity = in.Quantity

	if err := s.items.Save(ctx, persistent); err != nil {
		return nil, err
	}
	return persistent, nil
}
