package domain

import "strings"

// Role is the closed set of authorities a client can hold.
type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Authority maps the role to the authority string consumed by the
// authorization layer, e.g. ADMIN -> "ROLE_ADMIN".
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// bcryptMarker prefixes every password hash at rest. A password lacking the
// marker is raw and has not been through the confirm-registration transition.
const bcryptMarker = "$2a$"

// PasswordHashed reports whether p is already a stored bcrypt hash.
func PasswordHashed(p string) bool {
	return strings.HasPrefix(p, bcryptMarker)
}

// Client models a registered user and authenticated principal.
//
// Basket and Orders are hydrated on demand by explicit repository queries;
// after hydration they are never nil (empty slice when absent).
type Client struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Patronymic string `json:"patronymic,omitempty"`
	Login      string `json:"login"`
	Password   string `json:"-"`
	Email      string `json:"email"`
	Roles      []Role `json:"roles"`
	// ConfirmationCode is empty once the account is confirmed. A non-empty
	// code means the registration is still pending.
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	AccountNonLocked bool   `json:"account_non_locked"`

	Basket []ClientItem `json:"basket,omitempty"`
	Orders []Order      `json:"orders,omitempty"`
}

// HasRole reports whether the client holds the given role.
func (c *Client) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the client is a manager or an admin.
func (c *Client) IsStaff() bool {
	return c.HasRole(RoleManager) || c.HasRole(RoleAdmin)
}

// IsAdmin reports whether the client holds the ADMIN role.
func (c *Client) IsAdmin() bool {
	return c.HasRole(RoleAdmin)
}

// Authorities returns the authority strings for all held roles.
func (c *Client) Authorities() []string {
	out := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		out = append(out, r.Authority())
	}
	return out
}

// Confirmed reports whether the registration has been confirmed.
func (c *Client) Confirmed() bool {
	return c.ConfirmationCode == ""
}
