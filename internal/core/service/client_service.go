package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

// ClientService implements client and basket use cases on top of the
// repositories. Basket mutation follows the read-modify-write shape of the
// original system: fetch the current collection, compute the survivor set,
// persist. There is no locking across that sequence, so two concurrent
// mutations of the same basket are last-write-wins.
type ClientService struct {
	clients ports.ClientRepository
	items   ports.ClientItemRepository
	orders  ports.OrderRepository
	log     zerolog.Logger
}

func NewClientService(
	clients ports.ClientRepository,
	items ports.ClientItemRepository,
	orders ports.OrderRepository,
	log zerolog.Logger,
) *ClientService {
	return &ClientService{clients: clients, items: items, orders: orders, log: log}
}

func (s *ClientService) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	s.log.Debug().Int64("client_id", id).Msg("find client by id")
	return s.clients.FindByID(ctx, id)
}

func (s *ClientService) FindAll(ctx context.Context, page, size int) ([]domain.Client, int64, error) {
	s.log.Debug().Int("page", page).Int("size", size).Msg("find all clients")
	return s.clients.FindAll(ctx, page, size)
}

func (s *ClientService) FindByLogin(ctx context.Context, login string) (*domain.Client, error) {
	s.log.Debug().Str("login", login).Msg("find client by login")
	return s.clients.FindByLogin(ctx, login)
}

func (s *ClientService) FindByConfirmationCode(ctx context.Context, code string) (*domain.Client, error) {
	s.log.Debug().Msg("find client by confirmation code")
	return s.clients.FindByConfirmationCode(ctx, code)
}

func (s *ClientService) FindBasketItemsByClientID(ctx context.Context, id int64) ([]domain.ClientItem, error) {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return nil, err
	}

	basket, err := s.items.FindBasketByClientID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find basket of client %d: %w", id, err)
	}
	if basket == nil {
		basket = []domain.ClientItem{}
	}
	return basket, nil
}

func (s *ClientService) FindOrdersByClientID(ctx context.Context, id int64) ([]domain.Order, error) {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return nil, err
	}

	orders, err := s.orders.FindAllByClientID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find orders of client %d: %w", id, err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Save is the dual-purpose create/update disambiguated by login lookup.
//
// No existing client with this login: treat as registration and default the
// role set to {USER} when the caller supplied none. The password is stored
// as sent; hashing happens at the confirm transition.
//
// Existing client: treat as update. When a confirmation code is pending and
// the supplied password lacks the hash marker, this is the confirm
// transition: hash the password and clear the code. A password that already
// carries the marker is never re-hashed, so a hashed password never reverts
// to plain text.
func (s *ClientService) Save(ctx context.Context, client *domain.Client) error {
	existing, err := s.clients.FindByLogin(ctx, client.Login)
	if err != nil {
		return err
	}

	if existing == nil {
		s.log.Info().Str("login", client.Login).Msg("saving new client")
		if len(client.Roles) == 0 {
			client.Roles = []domain.Role{domain.RoleUser}
		}
	} else {
		s.log.Info().Int64("client_id", existing.ID).Msg("updating client")
		if client.ConfirmationCode != "" && !domain.PasswordHashed(client.Password) {
			hash, err := bcrypt.GenerateFromPassword([]byte(client.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			client.ConfirmationCode = ""
			client.Password = string(hash)
		}
	}

	return s.clients.Save(ctx, client)
}

// Update applies the incoming fields onto the persistent client, re-attaches
// the current basket and order collections, and runs the regular Save flow
// (so the confirm transition applies to updates through this path too).
func (s *ClientService) Update(ctx context.Context, id int64, in *domain.Client) (*domain.Client, error) {
	persistent, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	persistent.FirstName = in.FirstName
	persistent.LastName = in.LastName
	persistent.Patronymic = in.Patronymic
	persistent.Login = in.Login
	persistent.Password = in.Password
	persistent.Email = in.Email
	persistent.Roles = in.Roles
	persistent.ConfirmationCode = in.ConfirmationCode
	persistent.AccountNonLocked = in.AccountNonLocked

	basket, err := s.FindBasketItemsByClientID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.FindOrdersByClientID(ctx, id)
	if err != nil {
		return nil, err
	}
	persistent.Basket = basket
	persistent.Orders = orders

	if err := s.Save(ctx, persistent); err != nil {
		return nil, err
	}
	return persistent, nil
}

// Delete hard-deletes the client and cascades to its basket lines and orders.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	s.log.Info().Int64("client_id", id).Msg("deleting client")

	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}

	orders, err := s.orders.FindAllByClientID(ctx, id)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err := s.items.DeleteByOrderID(ctx, o.ID); err != nil {
			return err
		}
		if err := s.orders.Delete(ctx, o.ID); err != nil {
			return err
		}
	}
	if err := s.items.DeleteByClientID(ctx, id); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

// DeleteBasketItems removes the given lines from the client's current basket.
// Membership is decided by line id, not deep value comparison; ids not in
// the basket are ignored, so deleting the same line twice is a no-op.
func (s *ClientService) DeleteBasketItems(ctx context.Context, items []domain.ClientItem, clientID int64) error {
	s.log.Info().Int64("client_id", clientID).Int("items", len(items)).Msg("deleting basket items")

	basket, err := s.FindBasketItemsByClientID(ctx, clientID)
	if err != nil {
		return err
	}

	inBasket := make(map[int64]struct{}, len(basket))
	for _, line := range basket {
		inBasket[line.ID] = struct{}{}
	}

	var ids []int64
	for _, item := range items {
		if _, ok := inBasket[item.ID]; ok {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return s.items.Delete(ctx, ids...)
}

// AddItemToBasket re-reads the client's collections and places the new line
// in the basket, mirroring the whole-collection re-attach of the original.
func (s *ClientService) AddItemToBasket(ctx context.Context, clientID int64, item *domain.ClientItem) error {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}

	basket, err := s.FindBasketItemsByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	orders, err := s.FindOrdersByClientID(ctx, clientID)
	if err != nil {
		return err
	}

	item.ClientID = clientID
	item.OrderID = 0
	if err := s.items.Save(ctx, item); err != nil {
		return fmt.Errorf("add item to basket of client %d: %w", clientID, err)
	}

	client.Basket = append(basket, *item)
	client.Orders = orders
	return s.Save(ctx, client)
}
