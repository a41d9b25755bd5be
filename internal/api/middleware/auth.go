package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

const principalKey = "principal"

// Principal returns the authenticated client attached by Auth, or nil when
// the request carries no usable token.
func Principal(c echo.Context) *domain.Client {
	p, _ := c.Get(principalKey).(*domain.Client)
	return p
}

// Auth resolves the bearer token into a principal. A missing, malformed or
// invalid token leaves the request unauthenticated instead of rejecting it;
// the per-route authorization gates are what actually deny access.
func Auth(jwtSecret string, clients ports.ClientService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				log.Debug().Err(err).Msg("bearer token rejected")
				return next(c)
			}

			login, err := claims.GetSubject()
			if err != nil || login == "" {
				return next(c)
			}

			client, err := clients.FindByLogin(c.Request().Context(), login)
			if err != nil {
				log.Warn().Err(err).Str("login", login).Msg("principal lookup failed")
				return next(c)
			}
			if client == nil || !client.AccountNonLocked {
				return next(c)
			}

			c.Set(principalKey, client)
			return next(c)
		}
	}
}
