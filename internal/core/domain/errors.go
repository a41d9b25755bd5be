package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base class of all element-absent failures. The advice
// middleware matches on it to synthesize 404 responses; resource-specific
// sentinels below wrap it so callers can still distinguish.
var ErrNotFound = errors.New("element not found")

var (
	ErrClientNotFound     = fmt.Errorf("client %w", ErrNotFound)
	ErrClientItemNotFound = fmt.Errorf("client item %w", ErrNotFound)
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrItemNotFound       = fmt.Errorf("item %w", ErrNotFound)
)

var (
	// ErrLoginTaken is returned when an insert collides with the unique
	// index on login.
	ErrLoginTaken = errors.New("login already taken")
	// ErrInvalidCredentials covers both an unknown login and a password
	// mismatch, so responses do not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotConfirmed rejects logins while a confirmation code is
	// still pending.
	ErrAccountNotConfirmed = errors.New("account not confirmed")
)
