package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/pkg/logger"
)

type stubSessionGateway struct {
	calls int
	token *models.Token
	err   error
}

func (g *stubSessionGateway) Login(ctx context.Context, email, password string) (*models.Token, error) {
	g.calls++
	return g.token, g.err
}

func TestAuthService_SignIn(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		gateway   *stubSessionGateway
		expected  bool
		wantCalls int
	}{
		{
			name:      "accepted",
			email:     "john@mail.com",
			password:  "changeme",
			gateway:   &stubSessionGateway{token: &models.Token{AccessToken: "abc"}},
			expected:  true,
			wantCalls: 1,
		},
		{
			name:      "rejected by the store",
			email:     "john@mail.com",
			password:  "wrong",
			gateway:   &stubSessionGateway{err: errors.New("unexpected status code: 401")},
			expected:  false,
			wantCalls: 1,
		},
		{
			name:      "no token and no error",
			email:     "john@mail.com",
			password:  "changeme",
			gateway:   &stubSessionGateway{},
			expected:  false,
			wantCalls: 1,
		},
		{
			name:      "blank email",
			email:     "   ",
			password:  "changeme",
			gateway:   &stubSessionGateway{token: &models.Token{AccessToken: "abc"}},
			expected:  false,
			wantCalls: 0,
		},
		{
			name:      "blank password",
			email:     "john@mail.com",
			password:  "",
			gateway:   &stubSessionGateway{token: &models.Token{AccessToken: "abc"}},
			expected:  false,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.gateway, logger.New("error"))

			if got := svc.SignIn(context.Background(), tt.email, tt.password); got != tt.expected {
				t.Errorf("SignIn() = %v, expected %v", got, tt.expected)
			}
			if tt.gateway.calls != tt.wantCalls {
				t.Errorf("expected %d gateway calls, got %d", tt.wantCalls, tt.gateway.calls)
			}
		})
	}
}
