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

// clientPage is the cached shape of one FindAll page.
type clientPage struct {
	Clients []domain.Client `json:"clients"`
	Total   int64           `json:"total"`
}

// cachedClient re-exposes the password hash that domain.Client hides from
// JSON. The cache is a private store, and the authentication path reads
// principals through it, so the hash has to survive the round trip.
type cachedClient struct {
	domain.Client
	Password string `json:"password"`
}

func toCachedClient(c *domain.Client) cachedClient {
	return cachedClient{Client: *c, Password: c.Password}
}

func (cc cachedClient) toDomain() *domain.Client {
	client := cc.Client
	client.Password = cc.Password
	return &client
}

// CachedClientService is a read-through decorator over ClientService.
//
// Cached: FindByID and FindByLogin (clients region), FindAll (pagination
// region). Entries are evicted on delete only; an update can leave a stale
// cached read until the TTL expires, matching the original system.
type CachedClientService struct {
	inner ports.ClientService
	cache ports.Cache
	log   zerolog.Logger
}

func NewCachedClientService(inner ports.ClientService, cache ports.Cache, log zerolog.Logger) *CachedClientService {
	return &CachedClientService{inner: inner, cache: cache, log: log}
}

func clientIDKey(id int64) string {
	return fmt.Sprintf("%s:id:%d", ports.RegionClients, id)
}

func clientLoginKey(login string) string {
	return fmt.Sprintf("%s:login:%s", ports.RegionClients, login)
}

func clientPageKey(page, size int) string {
	return fmt.Sprintf("%s:clients:%d:%d", ports.RegionPagination, page, size)
}

func basketItemKey(id int64) string {
	return fmt.Sprintf("%s:id:%d", ports.RegionBasket, id)
}

// lookup reads key into dest, counting the hit/miss for the region. It
// returns true on a hit; cache transport errors degrade to a miss.
func (s *CachedClientService) lookup(ctx context.Context, region, key string, dest any) bool {
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

func (s *CachedClientService) store(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *CachedClientService) evict(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("cache eviction failed")
	}
}

func (s *CachedClientService) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	var cached cachedClient
	if s.lookup(ctx, ports.RegionClients, clientIDKey(id), &cached) {
		return cached.toDomain(), nil
	}

	client, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, clientIDKey(id), toCachedClient(client))
	return client, nil
}

func (s *CachedClientService) FindAll(ctx context.Context, page, size int) ([]domain.Client, int64, error) {
	var cached clientPage
	if s.lookup(ctx, ports.RegionPagination, clientPageKey(page, size), &cached) {
		return cached.Clients, cached.Total, nil
	}

	clients, total, err := s.inner.FindAll(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}
	s.store(ctx, clientPageKey(page, size), clientPage{Clients: clients, Total: total})
	return clients, total, nil
}

func (s *CachedClientService) FindByLogin(ctx context.Context, login string) (*domain.Client, error) {
	var cached cachedClient
	if s.lookup(ctx, ports.RegionClients, clientLoginKey(login), &cached) {
		return cached.toDomain(), nil
	}

	client, err := s.inner.FindByLogin(ctx, login)
	if err != nil || client == nil {
		return client, err
	}
	s.store(ctx, clientLoginKey(login), toCachedClient(client))
	return client, nil
}

func (s *CachedClientService) FindByConfirmationCode(ctx context.Context, code string) (*domain.Client, error) {
	return s.inner.FindByConfirmationCode(ctx, code)
}

func (s *CachedClientService) FindBasketItemsByClientID(ctx context.Context, id int64) ([]domain.ClientItem, error) {
	return s.inner.FindBasketItemsByClientID(ctx, id)
}

func (s *CachedClientService) FindOrdersByClientID(ctx context.Context, id int64) ([]domain.Order, error) {
	return s.inner.FindOrdersByClientID(ctx, id)
}

func (s *CachedClientService) Save(ctx context.Context, client *domain.Client) error {
	return s.inner.Save(ctx, client)
}

func (s *CachedClientService) Update(ctx context.Context, id int64, in *domain.Client) (*domain.Client, error) {
	return s.inner.Update(ctx, id, in)
}

// Delete evicts the client's id and login entries before delegating.
func (s *CachedClientService) Delete(ctx context.Context, id int64) error {
	keys := []string{clientIDKey(id)}
	if client, err := s.inner.FindByID(ctx, id); err == nil {
		keys = append(keys, clientLoginKey(client.Login))
	}
	s.evict(ctx, keys...)

	return s.inner.Delete(ctx, id)
}

// DeleteBasketItems evicts the removed lines from the basket region before
// delegating.
func (s *CachedClientService) DeleteBasketItems(ctx context.Context, items []domain.ClientItem, clientID int64) error {
	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, basketItemKey(item.ID))
	}
	if len(keys) > 0 {
		s.evict(ctx, keys...)
	}

	return s.inner.DeleteBasketItems(ctx, items, clientID)
}

func (s *CachedClientService) AddItemToBasket(ctx context.Context, clientID int64, item *domain.ClientItem) error {
	return s.inner.AddItemToBasket(ctx, clientID, item)
}
