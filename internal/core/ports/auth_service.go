package ports

import (
	"context"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	// Login returns a signed token and the authenticated client. It fails
	// with domain.ErrInvalidCredentials on an unknown login or password
	// mismatch, and with domain.ErrAccountNotConfirmed while a confirmation
	// code is still pending.
	Login(ctx context.Context, login, password string) (string, *domain.Client, error)
}
