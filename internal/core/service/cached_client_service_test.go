package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
)

func newCachedFixture(t *testing.T) (*CachedClientService, *ClientService, *stubClientRepo, *stubCache) {
	t.Helper()

	clients := newStubClientRepo()
	inner := newClientService(clients, newStubClientItemRepo(), newStubOrderRepo())
	cache := newStubCache()
	return NewCachedClientService(inner, cache, zerolog.Nop()), inner, clients, cache
}

func TestCachedClientService_FindByID_ServesFromCache(t *testing.T) {
	svc, inner, clients, _ := newCachedFixture(t)
	ctx := context.Background()

	client := &domain.Client{Login: "alice", Password: "pw", FirstName: "Alice"}
	if err := inner.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	// First read populates the cache.
	if _, err := svc.FindByID(ctx, client.ID); err != nil {
		t.Fatalf("first read: %v", err)
	}

	// Mutate the store directly; the cached value must still be served.
	clients.clients[client.ID].FirstName = "Changed"
	got, err := svc.FindByID(ctx, client.ID)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if got.FirstName != "Alice" {
		t.Fatalf("expected cached value, got %q", got.FirstName)
	}
}

func TestCachedClientService_PasswordSurvivesCacheRoundTrip(t *testing.T) {
	svc, inner, _, _ := newCachedFixture(t)
	ctx := context.Background()

	client := &domain.Client{Login: "bob", Password: "$2a$10$hash"}
	if err := inner.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := svc.FindByLogin(ctx, "bob"); err != nil {
		t.Fatalf("prime: %v", err)
	}
	got, err := svc.FindByLogin(ctx, "bob")
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	// The authentication path reads principals through the cache: losing
	// the hash here would break every login served from a warm cache.
	if got.Password != "$2a$10$hash" {
		t.Fatalf("password lost in cache round trip: %q", got.Password)
	}
}

func TestCachedClientService_FindByLogin_NoMatchNotCached(t *testing.T) {
	svc, _, _, cache := newCachedFixture(t)

	client, err := svc.FindByLogin(context.Background(), "ghost")
	if err != nil || client != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", client, err)
	}
	if len(cache.data) != 0 {
		t.Fatalf("absent login must not be cached: %v", cache.data)
	}
}

func TestCachedClientService_Delete_Evicts(t *testing.T) {
	svc, inner, _, cache := newCachedFixture(t)
	ctx := context.Background()

	client := &domain.Client{Login: "carol", Password: "pw"}
	if err := inner.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.FindByID(ctx, client.ID); err != nil {
		t.Fatalf("prime id: %v", err)
	}
	if _, err := svc.FindByLogin(ctx, "carol"); err != nil {
		t.Fatalf("prime login: %v", err)
	}

	if err := svc.Delete(ctx, client.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(cache.data) != 0 {
		t.Fatalf("delete must evict both entries, cache still holds %v", cache.data)
	}
	if _, err := svc.FindByID(ctx, client.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestCachedClientService_UpdateLeavesStaleEntry(t *testing.T) {
	svc, inner, _, _ := newCachedFixture(t)
	ctx := context.Background()

	client := &domain.Client{Login: "dave", Password: "pw", FirstName: "Dave"}
	if err := inner.Save(ctx, client); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.FindByID(ctx, client.ID); err != nil {
		t.Fatalf("prime: %v", err)
	}

	// Updates do not evict: the cached read stays stale until TTL expiry.
	if _, err := svc.Update(ctx, client.ID, &domain.Client{
		Login: "dave", Password: "pw", FirstName: "David", Roles: client.Roles,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.FindByID(ctx, client.ID)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.FirstName != "Dave" {
		t.Fatalf("expected the stale cached value, got %q", got.FirstName)
	}
}

func TestCachedClientService_FindAll_CachesPage(t *testing.T) {
	svc, inner, _, _ := newCachedFixture(t)
	ctx := context.Background()

	for _, login := range []string{"u1", "u2", "u3"} {
		if err := inner.Save(ctx, &domain.Client{Login: login, Password: "pw"}); err != nil {
			t.Fatalf("save %s: %v", login, err)
		}
	}

	page, total, err := svc.FindAll(ctx, 0, 2)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if total != 3 || len(page) != 2 {
		t.Fatalf("unexpected page: total=%d len=%d", total, len(page))
	}

	// A new registration is invisible to the cached page.
	if err := inner.Save(ctx, &domain.Client{Login: "u4", Password: "pw"}); err != nil {
		t.Fatalf("save u4: %v", err)
	}

	_, totalAgain, err := svc.FindAll(ctx, 0, 2)
	if err != nil {
		t.Fatalf("cached page: %v", err)
	}
	if totalAgain != 3 {
		t.Fatalf("expected cached total 3, got %d", totalAgain)
	}
}
