package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrNoIdentityProvider is returned when no login endpoint is configured.
var ErrNoIdentityProvider = errors.New("sync: no identity provider configured")

// HTTPIdentity implements Identity against a login provider exposing
// POST /login and POST /logout. The returned token is treated as an
// opaque bearer credential.
type HTTPIdentity struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPIdentity builds an identity client; an empty base URL yields a
// client whose Login fails with ErrNoIdentityProvider.
func NewHTTPIdentity(baseURL string) *HTTPIdentity {
	return &HTTPIdentity{BaseURL: baseURL, Client: &http.Client{}}
}

type loginResponse struct {
	User  UserIdentity `json:"user"`
	Token string       `json:"accessToken"`
}

func (h *HTTPIdentity) Login(ctx context.Context) (UserIdentity, string, error) {
	if h.BaseURL == "" {
		return UserIdentity{}, "", ErrNoIdentityProvider
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/login", bytes.NewReader([]byte("{}")))
	if err != nil {
		return UserIdentity{}, "", fmt.Errorf("sync: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := h.client().Do(req)
	if err != nil {
		return UserIdentity{}, "", fmt.Errorf("sync: login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return UserIdentity{}, "", fmt.Errorf("sync: login returned %d", resp.StatusCode)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return UserIdentity{}, "", fmt.Errorf("sync: decode login response: %w", err)
	}
	if login.Token == "" {
		return UserIdentity{}, "", errors.New("sync: login response had no token")
	}
	return login.User, login.Token, nil
}

func (h *HTTPIdentity) Logout(ctx context.Context) error {
	if h.BaseURL == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("sync: build logout request: %w", err)
	}
	resp, err := h.client().Do(req)
	if err != nil {
		return fmt.Errorf("sync: logout: %w", err)
	}
	defer resp.Body.Close()
	return nil
}

func (h *HTTPIdentity) client() *http.Client {
	if h.Client == nil {
		return http.DefaultClient
	}
	return h.Client
}
