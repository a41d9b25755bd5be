package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shop-platform/client-service/internal/core/domain"
)

func newClientService(clients *stubClientRepo, items *stubClientItemRepo, orders *stubOrderRepo) *ClientService {
	return NewClientService(clients, items, orders, zerolog.Nop())
}

func TestClientService_Save_RegistrationDefaultsRoles(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo, newStubClientItemRepo(), newStubOrderRepo())

	client := &domain.Client{Login: "alice", Password: "raw-secret", Email: "alice@example.com"}
	if err := svc.Save(context.Background(), client); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if len(client.Roles) != 1 || client.Roles[0] != domain.RoleUser {
		t.Fatalf("expected default roles {USER}, got %v", client.Roles)
	}
	if client.ID == 0 {
		t.Fatalf("expected server-assigned id")
	}
	// Hashing happens at the confirm transition, not at registration.
	if client.Password != "raw-secret" {
		t.Fatalf("registration must store the password as sent, got %q", client.Password)
	}
}

func TestClientService_Save_KeepsSuppliedRoles(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo, newStubClientItemRepo(), newStubOrderRepo())

	client := &domain.Client{Login: "boss", Password: "pw", Roles: []domain.Role{domain.RoleAdmin}}
	if err := svc.Save(context.Background(), client); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if len(client.Roles) != 1 || client.Roles[0] != domain.RoleAdmin {
		t.Fatalf("supplied roles must survive, got %v", client.Roles)
	}
}

func TestClientService_Save_ConfirmTransition(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo, newStubClientItemRepo(), newStubOrderRepo())
	ctx := context.Background()

	first := &domain.Client{Login: "bob", Password: "raw-pass", ConfirmationCode: "code-1"}
	if err := svc.Save(ctx, first); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	// Second save with the same login, pending code and a raw password is
	// the confirm transition.
	update := &domain.Client{ID: first.ID, Login: "bob", Password: "raw-pass", ConfirmationCode: "code-1"}
	if err := svc.Save(ctx, update); err != nil {
		t.Fatalf("confirm save failed: %v", err)
	}

	if update.ConfirmationCode != "" {
		t.Fatalf("confirmation code not cleared: %q", update.ConfirmationCode)
	}
	if !domain.PasswordHashed(update.Password) {
		t.Fatalf("password not hashed: %q", update.Password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(update.Password), []byte("raw-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestClientService_Save_HashedPasswordNeverRehashed(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo, newStubClientItemRepo(), newStubOrderRepo())
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	first := &domain.Client{Login: "carol", Password: string(hash), ConfirmationCode: "code-2"}
	if err := svc.Save(ctx, first); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	update := &domain.Client{ID: first.ID, Login: "carol", Password: string(hash), ConfirmationCode: "code-2"}
	if err := svc.Save(ctx, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// Without a raw password there is no transition: the hash stays as is
	// and the code remains pending.
	if update.Password != string(hash) {
		t.Fatalf("hash was modified")
	}
	if update.ConfirmationCode != "code-2" {
		t.Fatalf("code must stay pending, got %q", update.ConfirmationCode)
	}
}

func TestClientService_FindBasketItems_ClientMissing(t *testing.T) {
	svc := newClientService(newStubClientRepo(), newStubClientItemRepo(), newStubOrderRepo())

	_, err := svc.FindBasketItemsByClientID(context.Background(), 100)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestClientService_FindBasketItems_EmptyBasket(t *testing.T) {
	clients := newStubClientRepo()
	svc := newClientService(clients, newStubClientItemRepo(), newStubOrderRepo())
	ctx := context.Background()

	client := &domain.Client{Login: "dave", Password: "pw"}
	if err := svc.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	basket, err := svc.FindBasketItemsByClientID(ctx, client.ID)
	if err != nil {
		t.Fatalf("FindBasketItemsByClientID: %v", err)
	}
	if basket == nil || len(basket) != 0 {
		t.Fatalf("expected empty non-nil basket, got %#v", basket)
	}
}

func TestClientService_DeleteBasketItems_Idempotent(t *testing.T) {
	clients := newStubClientRepo()
	items := newStubClientItemRepo()
	svc := newClientService(clients, items, newStubOrderRepo())
	ctx := context.Background()

	client := &domain.Client{Login: "erin", Password: "pw"}
	if err := svc.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	lineA := domain.ClientItem{Item: domain.Item{Name: "mug", Price: 5}, Quantity: 1}
	lineB := domain.ClientItem{Item: domain.Item{Name: "pot", Price: 20}, Quantity: 2}
	if err := svc.AddItemToBasket(ctx, client.ID, &lineA); err != nil {
		t.Fatalf("add lineA: %v", err)
	}
	if err := svc.AddItemToBasket(ctx, client.ID, &lineB); err != nil {
		t.Fatalf("add lineB: %v", err)
	}

	if err := svc.DeleteBasketItems(ctx, []domain.ClientItem{lineA}, client.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	// Second delete of the same line is a no-op, not an error.
	if err := svc.DeleteBasketItems(ctx, []domain.ClientItem{lineA}, client.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	basket, err := svc.FindBasketItemsByClientID(ctx, client.ID)
	if err != nil {
		t.Fatalf("basket: %v", err)
	}
	if len(basket) != 1 || basket[0].ID != lineB.ID {
		t.Fatalf("expected only lineB left, got %#v", basket)
	}
}

func TestClientService_AddItemToBasket(t *testing.T) {
	clients := newStubClientRepo()
	items := newStubClientItemRepo()
	svc := newClientService(clients, items, newStubOrderRepo())
	ctx := context.Background()

	client := &domain.Client{Login: "frank", Password: "pw"}
	if err := svc.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	line := domain.ClientItem{Item: domain.Item{Name: "lamp", Price: 30}, Quantity: 1}
	if err := svc.AddItemToBasket(ctx, client.ID, &line); err != nil {
		t.Fatalf("AddItemToBasket: %v", err)
	}

	if line.ClientID != client.ID || !line.InBasket() {
		t.Fatalf("line not attached to basket: %+v", line)
	}

	basket, err := svc.FindBasketItemsByClientID(ctx, client.ID)
	if err != nil {
		t.Fatalf("basket: %v", err)
	}
	if len(basket) != 1 || basket[0].Item.Name != "lamp" {
		t.Fatalf("unexpected basket: %#v", basket)
	}
}

func TestClientService_Delete_Cascades(t *testing.T) {
	clients := newStubClientRepo()
	items := newStubClientItemRepo()
	orders := newStubOrderRepo()
	svc := newClientService(clients, items, orders)
	ctx := context.Background()

	client := &domain.Client{Login: "grace", Password: "pw"}
	if err := svc.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	basketLine := domain.ClientItem{Item: domain.Item{Name: "pen"}, Quantity: 1}
	if err := svc.AddItemToBasket(ctx, client.ID, &basketLine); err != nil {
		t.Fatalf("add: %v", err)
	}
	order := &domain.Order{ClientID: client.ID, OrderStatus: domain.StatusNew}
	if err := orders.Save(ctx, order); err != nil {
		t.Fatalf("save order: %v", err)
	}
	orderLine := &domain.ClientItem{ClientID: client.ID, OrderID: order.ID, Item: domain.Item{Name: "ink"}, Quantity: 2}
	if err := items.Save(ctx, orderLine); err != nil {
		t.Fatalf("save order line: %v", err)
	}

	if err := svc.Delete(ctx, client.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(clients.clients) != 0 {
		t.Fatalf("client not deleted")
	}
	if len(orders.orders) != 0 {
		t.Fatalf("orders not cascaded")
	}
	if len(items.lines) != 0 {
		t.Fatalf("lines not cascaded: %#v", items.lines)
	}
}

func TestClientService_Update_PreservesID(t *testing.T) {
	clients := newStubClientRepo()
	svc := newClientService(clients, newStubClientItemRepo(), newStubOrderRepo())
	ctx := context.Background()

	client := &domain.Client{Login: "henry", Password: "pw", FirstName: "Henry"}
	if err := svc.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	updated, err := svc.Update(ctx, client.ID, &domain.Client{
		ID:        999,
		Login:     "henry",
		Password:  "pw",
		FirstName: "Henri",
		Roles:     []domain.Role{domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ID != client.ID {
		t.Fatalf("id must never be overwritten: got %d", updated.ID)
	}
	if updated.FirstName != "Henri" {
		t.Fatalf("field not applied: %q", updated.FirstName)
	}
}

func TestClientService_Update_MissingClient(t *testing.T) {
	svc := newClientService(newStubClientRepo(), newStubClientItemRepo(), newStubOrderRepo())

	_, err := svc.Update(context.Background(), 200, &domain.Client{Login: "x", Password: "pw"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
