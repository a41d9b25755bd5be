package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
	"github.com/shop-platform/client-service/internal/pkg/metrics"
)

// CachedClientItemService is a read-through decorator over ClientItemService.
// Only FindByID goes through the basket region; the aggregate computations
// are pure functions and need no caching. Eviction happens through
// CachedClientService.DeleteBasketItems, which owns basket removal.
type CachedClientItemService struct {
	inner ports.ClientItemService
	cache ports.Cache
	log   zerolog.Logger
}

func NewCachedClientItemService(inner ports.ClientItemService, cache ports.Cache, log zerolog.Logger) *CachedClientItemService {
	return &CachedClientItemService{inner: inner, cache: cache, log: log}
}

func (s *CachedClientItemService) GeneralPrice(basket []domain.ClientItem) float64 {
	return s.inner.GeneralPrice(basket)
}

func (s *CachedClientItemService) GeneralWeight(basket []domain.ClientItem) float64 {
	return s.inner.GeneralWeight(basket)
}

func (s *CachedClientItemService) FindByID(ctx context.Context, id int64) (*domain.ClientItem, error) {
	key := basketItemKey(id)

	var cached domain.ClientItem
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		metrics.CacheRequestsTotal.WithLabelValues(ports.RegionBasket, "hit").Inc()
		return &cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	metrics.CacheRequestsTotal.WithLabelValues(ports.RegionBasket, "miss").Inc()

	item, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if setErr := s.cache.Set(ctx, key, item); setErr != nil {
		s.log.Warn().Err(setErr).Str("key", key).Msg("cache write failed")
	}
	return item, nil
}

func (s *CachedClientItemService) Save(ctx context.Context, item *domain.ClientItem) error {
	return s.inner.Save(ctx, item)
}

func (s *CachedClientItemService) Update(ctx context.Context, id int64, in *domain.ClientItem) (*domain.ClientItem, error) {
	return s.inner.Update(ctx, id, in)
}
