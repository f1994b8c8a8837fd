package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/session"
)

// Credentials is what the remote API grants at sign-in: the token attached
// to every subsequent call, the role baked into it, and the instant the
// grant stops being usable.
type Credentials struct {
	Token     string
	Role      session.Role
	ExpiresAt time.Time
}

// SignUpRequest carries the fields of a new account registration.
type SignUpRequest struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	ContactNumber string
}

// AuthGateway defines the authentication contract against the remote
// storefront API.
type AuthGateway interface {
	// SignIn exchanges user credentials for an auth token and role.
	// A rejected sign-in surfaces the server's message.
	SignIn(ctx context.Context, username, password string) (Credentials, error)

	// SignUp registers a new account. The user signs in separately
	// afterwards; no token is issued here.
	SignUp(ctx context.Context, req SignUpRequest) error
}
