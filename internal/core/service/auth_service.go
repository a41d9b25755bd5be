package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shop-platform/client-service/internal/core/domain"
	"github.com/shop-platform/client-service/internal/core/ports"
)

// AuthService verifies credentials against the client store and issues
// HS256 bearer tokens. Accounts with a pending confirmation code cannot log
// in: their password is still stored raw, so a bcrypt comparison could never
// succeed, and rejecting explicitly gives the caller a useful error.
type AuthService struct {
	clients   ports.ClientService
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(clients ports.ClientService, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{clients: clients, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Login(ctx context.Context, login, password string) (string, *domain.Client, error) {
	if login == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	client, err := s.clients.FindByLogin(ctx, login)
	if err != nil {
		return "", nil, err
	}
	if client == nil {
		s.log.Warn().Str("login", login).Msg("login attempt for unknown client")
		return "", nil, domain.ErrInvalidCredentials
	}

	if !client.Confirmed() {
		s.log.Warn().Int64("client_id", client.ID).Msg("login attempt before confirmation")
		return "", nil, domain.ErrAccountNotConfirmed
	}

	if bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(client)
	if err != nil {
		return "", nil, err
	}

	return token, client, nil
}

func (s *AuthService) generateToken(client *domain.Client) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   client.Login,
		"roles": client.Authorities(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
