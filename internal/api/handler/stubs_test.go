package handler

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// stubClientService is a map-backed ports.ClientService for handler tests.
type stubClientService struct {
	clients map[int64]*domain.Client
	baskets map[int64][]domain.ClientItem
	nextID  int64
}

func newStubClientService() *stubClientService {
	return &stubClientService{
		clients: make(map[int64]*domain.Client),
		baskets: make(map[int64][]domain.ClientItem),
	}
}

func (s *stubClientService) add(client *domain.Client, basket ...domain.ClientItem) {
	s.clients[client.ID] = client
	s.baskets[client.ID] = basket
}

func (s *stubClientService) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	if c, ok := s.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (s *stubClientService) FindAll(_ context.Context, page, size int) ([]domain.Client, int64, error) {
	out := []domain.Client{}
	for _, c := range s.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *stubClientService) FindByLogin(_ context.Context, login string) (*domain.Client, error) {
	for _, c := range s.clients {
		if c.Login == login {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubClientService) FindByConfirmationCode(_ context.Context, code string) (*domain.Client, error) {
	for _, c := range s.clients {
		if code != "" && c.ConfirmationCode == code {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubClientService) FindBasketItemsByClientID(_ context.Context, id int64) ([]domain.ClientItem, error) {
	if _, ok := s.clients[id]; !ok {
		return nil, domain.ErrClientNotFound
	}
	basket := s.baskets[id]
	if basket == nil {
		basket = []domain.ClientItem{}
	}
	return basket, nil
}

func (s *stubClientService) FindOrdersByClientID(_ context.Context, id int64) ([]domain.Order, error) {
	if _, ok := s.clients[id]; !ok {
		return nil, domain.ErrClientNotFound
	}
	return []domain.Order{}, nil
}

func (s *stubClientService) Save(_ context.Context, client *domain.Client) error {
	if client.ID == 0 {
		s.nextID++
		client.ID = s.nextID
	}
	if len(client.Roles) == 0 {
		client.Roles = []domain.Role{domain.RoleUser}
	}
	s.clients[client.ID] = client
	return nil
}

func (s *stubClientService) Update(_ context.Context, id int64, in *domain.Client) (*domain.Client, error) {
	if _, ok := s.clients[id]; !ok {
		return nil, domain.ErrClientNotFound
	}
	in.ID = id
	s.clients[id] = in
	return in, nil
}

func (s *stubClientService) Delete(_ context.Context, id int64) error {
	delete(s.clients, id)
	delete(s.baskets, id)
	return nil
}

func (s *stubClientService) DeleteBasketItems(_ context.Context, items []domain.ClientItem, clientID int64) error {
	if _, ok := s.clients[clientID]; !ok {
		return domain.ErrClientNotFound
	}

	drop := make(map[int64]struct{}, len(items))
	for _, item := range items {
		drop[item.ID] = struct{}{}
	}

	kept := []domain.ClientItem{}
	for _, line := range s.baskets[clientID] {
		if _, ok := drop[line.ID]; !ok {
			kept = append(kept, line)
		}
	}
	s.baskets[clientID] = kept
	return nil
}

func (s *stubClientService) AddItemToBasket(_ context.Context, clientID int64, item *domain.ClientItem) error {
	if _, ok := s.clients[clientID]; !ok {
		return domain.ErrClientNotFound
	}
	if item.ID == 0 {
		s.nextID++
		item.ID = s.nextID
	}
	item.ClientID = clientID
	s.baskets[clientID] = append(s.baskets[clientID], *item)
	return nil
}

// stubClientItemService is a minimal ports.ClientItemService for handler
// tests; the sums mirror the real implementation.
type stubClientItemService struct {
	lines map[int64]*domain.ClientItem
}

func newStubClientItemService(lines ...*domain.ClientItem) *stubClientItemService {
	s := &stubClientItemService{lines: make(map[int64]*domain.ClientItem)}
	for _, l := range lines {
		s.lines[l.ID] = l
	}
	return s
}

func (s *stubClientItemService) GeneralPrice(basket []domain.ClientItem) float64 {
	var total float64
	for _, line := range basket {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

func (s *stubClientItemService) GeneralWeight(basket []domain.ClientItem) float64 {
	var total float64
	for _, line := range basket {
		total += line.Item.Weight * float64(line.Quantity)
	}
	return total
}

func (s *stubClientItemService) FindByID(_ context.Context, id int64) (*domain.ClientItem, error) {
	if l, ok := s.lines[id]; ok {
		return l, nil
	}
	return nil, domain.ErrClientItemNotFound
}

func (s *stubClientItemService) Save(_ context.Context, item *domain.ClientItem) error {
	s.lines[item.ID] = item
	return nil
}

func (s *stubClientItemService) Update(_ context.Context, id int64, in *domain.ClientItem) (*domain.ClientItem, error) {
	persistent, ok := s.lines[id]
	if !ok {
		return nil, domain.ErrClientItemNotFound
	}
	persistent.Item = in.Item
	persistent.Quantity = in.Quantity
	return persistent, nil
}
