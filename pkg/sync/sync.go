// Package sync mirrors local task mutations to an external calendar on a
// best-effort basis. Local state is authoritative: the mirror runs after
// the local mutation has already landed, and its failures never roll the
// mutation back.
package sync

import (
	"context"
	"errors"

	"tableflip.dev/tick/pkg/model"
)

// ErrUnauthorized marks a rejected credential. The adapter reacts by
// clearing the stored token so further sync attempts are skipped until
// the user signs in again.
var ErrUnauthorized = errors.New("sync: unauthorized")

// Calendar is the external calendar provider collaborator.
type Calendar interface {
	CreateEvent(ctx context.Context, token string, task model.Task) (remoteID string, err error)
	UpdateEvent(ctx context.Context, token string, task model.Task) (remoteID string, err error)
}

// Identity is the external login provider collaborator. The token is an
// opaque bearer credential; the core never inspects it.
type Identity interface {
	Login(ctx context.Context) (UserIdentity, string, error)
	Logout(ctx context.Context) error
}

// UserIdentity is opaque display data returned by the login provider.
type UserIdentity struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
}

// TokenSource exposes the locally held access token to the adapter.
type TokenSource interface {
	Token() string
	ClearToken()
}
