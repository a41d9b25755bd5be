package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shop-platform/client-service/internal/core/domain"
)

// deny distinguishes "who are you" from "you may not": anonymous callers get
// 401, authenticated but unprivileged ones get 403.
func deny(c echo.Context) error {
	if Principal(c) == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return echo.NewHTTPError(http.StatusForbidden, "forbidden")
}

// RequireAuthenticated admits any authenticated principal.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Principal(c) == nil {
				return deny(c)
			}
			return next(c)
		}
	}
}

// RequireRoles admits principals holding at least one of the given roles.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil {
				return deny(c)
			}
			for _, r := range p.Roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return deny(c)
		}
	}
}

// RequireAdmin admits ADMIN principals only.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRoles(domain.RoleAdmin)
}

// RequireStaff admits MANAGER and ADMIN principals.
func RequireStaff() echo.MiddlewareFunc {
	return RequireRoles(domain.RoleManager, domain.RoleAdmin)
}

// RequireSelfOrStaff admits staff, or the principal whose id equals the
// idParam path parameter.
func RequireSelfOrStaff(idParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil {
				return deny(c)
			}
			if p.IsStaff() {
				return next(c)
			}
			if id, err := strconv.ParseInt(c.Param(idParam), 10, 64); err == nil && id == p.ID {
				return next(c)
			}
			return deny(c)
		}
	}
}

// RequireSelfLoginOrStaff admits staff, or the principal whose login equals
// the path parameter.
func RequireSelfLoginOrStaff(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil {
				return deny(c)
			}
			if p.IsStaff() || p.Login == c.Param(param) {
				return next(c)
			}
			return deny(c)
		}
	}
}

// RequireSelfCodeOrStaff admits staff, or the principal whose pending
// confirmation code equals the path parameter.
func RequireSelfCodeOrStaff(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil {
				return deny(c)
			}
			if p.IsStaff() || (p.ConfirmationCode != "" && p.ConfirmationCode == c.Param(param)) {
				return next(c)
			}
			return deny(c)
		}
	}
}
