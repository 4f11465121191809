package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

var (
	ErrMissingToken = errors.New("login response carried no token")
)

// SessionClient signs users in against the remote store API
type SessionClient struct {
	baseURL string
	client  *http.Client
}

// NewSessionClient creates a session client
func NewSessionClient(baseURL string, timeout time.Duration) *SessionClient {
	return &SessionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Login handles POST /api/v1/auth/login
func (c *SessionClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	body, err := json.Marshal(models.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var token models.Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrMissingToken
	}

	return &token, nil
}
