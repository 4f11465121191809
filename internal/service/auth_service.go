package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

// SessionGateway exchanges credentials for a token
type SessionGateway interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
}

// AuthService signs users in
type AuthService struct {
	gateway SessionGateway
	log     *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(gateway SessionGateway, log *slog.Logger) *AuthService {
	return &AuthService{
		gateway: gateway,
		log:     log,
	}
}

// SignIn reports whether the credentials were accepted. Wrong credentials and
// transport failures both come back as false.
func (s *AuthService) SignIn(ctx context.Context, email, password string) bool {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false
	}

	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.log.Info("sign in rejected", "email", email, "error", err)
		return false
	}
	return token != nil
}
