package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
	"github.com/shop-platform/client-service/internal/pkg/metrics"
)

// orderPage is the cached shape of one paginated order listing.
type orderPage struct {
	Orders []domain.Order `json:"orders"`
	Total  int64          `json:"total"`
}

// CachedOrderService is a read-through decorator over OrderService: FindByID
// goes through the orders region, the paginated listings through the
// pagination region. Delete evicts the order's entry; updates do not.
type CachedOrderService struct {
	inner ports.OrderService
	cache ports.Cache
	log   zerolog.Logger
}

func NewCachedOrderService(inner ports.OrderService, cache ports.Cache, log zerolog.Logger) *CachedOrderService {
	return &CachedOrderService{inner: inner, cache: cache, log: log}
}

func orderIDKey(id int64) string {
	return fmt.Sprintf("%s:id:%d", ports.RegionOrders, id)
}

func managerQueueKey(page, size int) string {
	return fmt.Sprintf("%s:orders:managers:%d:%d", ports.RegionPagination, page, size)
}

func clientOrdersKey(clientID int64, page, size int) string {
	return fmt.Sprintf("%s:orders:client:%d:%d:%d", ports.RegionPagination, clientID, page, size)
}

func (s *CachedOrderService) lookup(ctx context.Context, region, key string, dest any) bool {
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		metrics.CacheRequestsTotal.WithLabelValues(region, "hit").Inc()
		return true
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	metrics.CacheRequestsTotal.WithLabelValues(region, "miss").Inc()
	return false
}

func (s *CachedOrderService) store(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *CachedOrderService) FindForManagers(ctx context.Context, page, size int) ([]domain.Order, int64, error) {
	var cached orderPage
	if s.lookup(ctx, ports.RegionPagination, managerQueueKey(page, size), &cached) {
		return cached.Orders, cached.Total, nil
	}

	orders, total, err := s.inner.FindForManagers(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}
	s.store(ctx, managerQueueKey(page, size), orderPage{Orders: orders, Total: total})
	return orders, total, nil
}

func (s *CachedOrderService) FindByClientID(ctx context.Context, clientID int64, page, size int) ([]domain.Order, int64, error) {
	var cached orderPage
	if s.lookup(ctx, ports.RegionPagination, clientOrdersKey(clientID, page, size), &cached) {
		return cached.Orders, cached.Total, nil
	}

	orders, total, err := s.inner.FindByClientID(ctx, clientID, page, size)
	if err != nil {
		return nil, 0, err
	}
	s.store(ctx, clientOrdersKey(clientID, page, size), orderPage{Orders: orders, Total: total})
	return orders, total, nil
}

func (s *CachedOrderService) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var cached domain.Order
	if s.lookup(ctx, ports.RegionOrders, orderIDKey(id), &cached) {
		return &cached, nil
	}

	order, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, orderIDKey(id), order)
	return order, nil
}

func (s *CachedOrderService) FindClientByOrderID(ctx context.Context, orderID int64) (*domain.Client, error) {
	return s.inner.FindClientByOrderID(ctx, orderID)
}

func (s *CachedOrderService) Create(ctx context.Context, clientID int64, order *domain.Order) error {
	return s.inner.Create(ctx, clientID, order)
}

func (s *CachedOrderService) Update(ctx context.Context, orderID int64, in *domain.Order) (*domain.Order, error) {
	return s.inner.Update(ctx, orderID, in)
}

// Delete evicts the order's entry before delegating.
func (s *CachedOrderService) Delete(ctx context.Context, id int64) error {
	if err := s.cache.Delete(ctx, orderIDKey(id)); err != nil {
		s.log.Warn().Err(err).Int64("order_id", id).Msg("cache eviction failed")
	}
	return s.inner.Delete(ctx, id)
}
