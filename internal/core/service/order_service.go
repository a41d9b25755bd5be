package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

// OrderService implements order use cases: the manager queue, per-client
// order listings, and the basket-to-order transition.
type OrderService struct {
	orders  ports.OrderRepository
	items   ports.ClientItemRepository
	clients ports.ClientRepository
	log     zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	items ports.ClientItemRepository,
	clients ports.ClientRepository,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, items: items, clients: clients, log: log}
}

func (s *OrderService) FindForManagers(ctx context.Context, page, size int) ([]domain.Order, int64, error) {
	s.log.Debug().Int("page", page).Int("size", size).Msg("find manager queue")
	return s.orders.FindForManagers(ctx, page, size)
}

func (s *OrderService) FindByClientID(ctx context.Context, clientID int64, page, size int) ([]domain.Order, int64, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, 0, err
	}
	return s.orders.FindByClientID(ctx, clientID, page, size)
}

func (s *OrderService) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	s.log.Debug().Int64("order_id", id).Msg("find order by id")
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) FindClientByOrderID(ctx context.Context, orderID int64) (*domain.Client, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.clients.FindByID(ctx, order.ClientID)
}

// Create finalizes an order for the client. The owning client is set here
// and never reassigned. Lines carrying an id are moved out of the basket
// into the order's line set; lines without an id are created on the spot.
func (s *OrderService) Create(ctx context.Context, clientID int64, order *domain.Order) error {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return err
	}

	order.ClientID = clientID
	if order.OrderStatus == "" {
		order.OrderStatus = domain.StatusNew
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save order for client %d: %w", clientID, err)
	}

	for i := range order.ClientItems {
		line := &order.ClientItems[i]
		line.OrderID = order.ID
		if err := s.items.Save(ctx, line); err != nil {
			return fmt.Errorf("attach line to order %d: %w", order.ID, err)
		}
	}

	s.log.Info().Int64("order_id", order.ID).Int64("client_id", clientID).
		Int("lines", len(order.ClientItems)).Msg("order created")

	return nil
}

// Update applies the incoming order onto the persistent one. The order id
// and the owning client are never overwritten.
func (s *OrderService) Update(ctx context.Context, orderID int64, in *domain.Order) (*domain.Order, error) {
	persistent, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	persistent.Contacts = in.Contacts
	persistent.PaymentMethod = in.PaymentMethod
	persistent.TrackNumber = in.TrackNumber
	if in.OrderStatus != "" {
		persistent.OrderStatus = in.OrderStatus
	}
	if in.ClientItems != nil {
		persistent.ClientItems = in.ClientItems
		for i := range persistent.ClientItems {
			line := &persistent.ClientItems[i]
			line.OrderID = persistent.ID
			if err := s.items.Save(ctx, line); err != nil {
				return nil, fmt.Errorf("attach line to order %d: %w", persistent.ID, err)
			}
		}
	}

	if err := s.orders.Save(ctx, persistent); err != nil {
		return nil, err
	}
	return persistent, nil
}

// Delete removes the order together with its line set.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	s.log.Info().Int64("order_id", id).Msg("deleting order")

	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.items.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}
