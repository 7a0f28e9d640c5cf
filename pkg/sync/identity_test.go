package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPIdentityLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":        map[string]string{"displayName": "Alex", "email": "alex@example.com"},
			"accessToken": "tok-123",
		})
	}))
	defer srv.Close()

	h := NewHTTPIdentity(srv.URL)
	user, token, err := h.Login(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.DisplayName != "Alex" || user.Email != "alex@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestHTTPIdentityLoginWithoutProvider(t *testing.T) {
	h := NewHTTPIdentity("")
	if _, _, err := h.Login(context.Background()); !errors.Is(err, ErrNoIdentityProvider) {
		t.Fatalf("expected ErrNoIdentityProvider, got %v", err)
	}
}

func TestHTTPIdentityLoginRejectsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{}})
	}))
	defer srv.Close()

	h := NewHTTPIdentity(srv.URL)
	if _, _, err := h.Login(context.Background()); err == nil {
		t.Fatalf("expected an error for a tokenless response")
	}
}
