package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
)

// SignInResult is what a successful sign-in hands back to the caller: the
// session to present on subsequent requests and the role the remote API
// granted.
type SignInResult struct {
	SessionID kernel.UUID
	Role      session.Role
}

// SignInCommandHandler exchanges credentials for a remote auth token and
// stores the resulting session.
type SignInCommandHandler struct {
	auth     ports.AuthGateway
	sessions ports.SessionRepository
}

// NewSignInCommandHandler creates a handler for sign-in operations.
func NewSignInCommandHandler(auth ports.AuthGateway, sessions ports.SessionRepository) SignInCommandHandler {
	return SignInCommandHandler{
		auth:     auth,
		sessions: sessions,
	}
}

// Handle authenticates against the remote API and, on success, creates a
// session keyed by a fresh identifier. A rejected sign-in returns the
// gateway's error with the server's message intact.
func (h *SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (SignInResult, error) {
	if err := cmd.Validate(); err != nil {
		return SignInResult{}, err
	}

	creds, err := h.auth.SignIn(ctx, cmd.Username(), cmd.Password())
	if err != nil {
		return SignInResult{}, err
	}

	sess, err := session.NewSession(kernel.NewUUID(), creds.Token, creds.Role, creds.ExpiresAt)
	if err != nil {
		return SignInResult{}, err
	}

	if err = h.sessions.Add(ctx, sess); err != nil {
		return SignInResult{}, err
	}

	return SignInResult{
		SessionID: sess.ID(),
		Role:      sess.Role(),
	}, nil
}
