package auth

import (
	"context"

	"clickup-context/pkg/clickup"
)

type UseCase interface {
	// StartOAuth runs the full three-legged OAuth handshake: local
	// callback listener, browser hand-off, code exchange, token persist.
	// It blocks until the flow completes or fails.
	StartOAuth(ctx context.Context, input StartOAuthInput) error

	// CheckAuth reports whether a token is currently stored. Store probe
	// failures are reported inside AuthStatus, not as an error.
	CheckAuth(ctx context.Context) (AuthStatus, error)

	// Logout removes the stored token.
	Logout(ctx context.Context) error

	// AuthorizedUser fetches the authenticated user's profile.
	AuthorizedUser(ctx context.Context) (*clickup.AuthenticatedUser, error)

	// Subscribe registers a callback invoked after each successful OAuth
	// flow. Delivery is fire-and-forget.
	Subscribe(fn func())
}
