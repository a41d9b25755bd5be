package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

// --- client repository stub ---

type stubClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	if c, ok := r.clients[id]; ok {
		return cloneClient(c), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindAll(_ context.Context, page, size int) ([]domain.Client, int64, error) {
	ids := make([]int64, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []domain.Client{}
	for i, id := range ids {
		if i >= page*size && len(out) < size {
			out = append(out, *cloneClient(r.clients[id]))
		}
	}
	return out, int64(len(ids)), nil
}

func (r *stubClientRepo) FindByLogin(_ context.Context, login string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Login == login {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (r *stubClientRepo) FindByConfirmationCode(_ context.Context, code string) (*domain.Client, error) {
	if code == "" {
		return nil, nil
	}
	for _, c := range r.clients {
		if c.ConfirmationCode == code {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (r *stubClientRepo) Save(_ context.Context, client *domain.Client) error {
	if client.ID == 0 {
		r.nextID++
		client.ID = r.nextID
	}
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	delete(r.clients, id)
	return nil
}

// --- client item repository stub ---

type stubClientItemRepo struct {
	lines  map[int64]*domain.ClientItem
	nextID int64
}

func newStubClientItemRepo() *stubClientItemRepo {
	return &stubClientItemRepo{lines: make(map[int64]*domain.ClientItem)}
}

func cloneLine(l *domain.ClientItem) *domain.ClientItem {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *stubClientItemRepo) FindByID(_ context.Context, id int64) (*domain.ClientItem, error) {
	if l, ok := r.lines[id]; ok {
		return cloneLine(l), nil
	}
	return nil, domain.ErrClientItemNotFound
}

func (r *stubClientItemRepo) FindBasketByClientID(_ context.Context, clientID int64) ([]domain.ClientItem, error) {
	out := []domain.ClientItem{}
	for _, l := range r.lines {
		if l.ClientID == clientID && l.InBasket() {
			out = append(out, *cloneLine(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientItemRepo) FindByOrderIDs(_ context.Context, orderIDs []int64) (map[int64][]domain.ClientItem, error) {
	wanted := make(map[int64]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = struct{}{}
	}

	out := make(map[int64][]domain.ClientItem)
	for _, l := range r.lines {
		if _, ok := wanted[l.OrderID]; ok {
			out[l.OrderID] = append(out[l.OrderID], *cloneLine(l))
		}
	}
	return out, nil
}

func (r *stubClientItemRepo) Save(_ context.Context, item *domain.ClientItem) error {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	}
	r.lines[item.ID] = cloneLine(item)
	return nil
}

func (r *stubClientItemRepo) Delete(_ context.Context, ids ...int64) error {
	for _, id := range ids {
		delete(r.lines, id)
	}
	return nil
}

func (r *stubClientItemRepo) DeleteByClientID(_ context.Context, clientID int64) error {
	for id, l := range r.lines {
		if l.ClientID == clientID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *stubClientItemRepo) DeleteByOrderID(_ context.Context, orderID int64) error {
	for id, l := range r.lines {
		if l.OrderID == orderID {
			delete(r.lines, id)
		}
	}
	return nil
}

// --- order repository stub ---

type stubOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[int64]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) sorted(filter func(*domain.Order) bool) []domain.Order {
	out := []domain.Order{}
	for _, o := range r.orders {
		if filter(o) {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func pageOf(orders []domain.Order, page, size int) []domain.Order {
	start := page * size
	if start >= len(orders) {
		return []domain.Order{}
	}
	end := start + size
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

func (r *stubOrderRepo) FindByClientID(_ context.Context, clientID int64, page, size int) ([]domain.Order, int64, error) {
	all := r.sorted(func(o *domain.Order) bool { return o.ClientID == clientID })
	return pageOf(all, page, size), int64(len(all)), nil
}

func (r *stubOrderRepo) FindAllByClientID(_ context.Context, clientID int64) ([]domain.Order, error) {
	return r.sorted(func(o *domain.Order) bool { return o.ClientID == clientID }), nil
}

func (r *stubOrderRepo) FindForManagers(_ context.Context, page, size int) ([]domain.Order, int64, error) {
	all := r.sorted(func(o *domain.Order) bool { return o.OrderStatus != domain.StatusCompleted })
	return pageOf(all, page, size), int64(len(all)), nil
}

func (r *stubOrderRepo) Save(_ context.Context, order *domain.Order) error {
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) error {
	delete(r.orders, id)
	return nil
}

// --- cache stub ---

type stubCache struct {
	data    map[string][]byte
	deletes []string
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dest any) error {
	raw, ok := c.data[key]
	if !ok {
		return ports.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *stubCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *stubCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
		c.deletes = append(c.deletes, key)
	}
	return nil
}
