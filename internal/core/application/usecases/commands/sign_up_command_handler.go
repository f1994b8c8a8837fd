package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// SignUpCommandHandler registers new accounts with the remote API.
type SignUpCommandHandler struct {
	auth ports.AuthGateway
}

// NewSignUpCommandHandler creates a handler for account registration.
func NewSignUpCommandHandler(auth ports.AuthGateway) SignUpCommandHandler {
	return SignUpCommandHandler{
		auth: auth,
	}
}

// Handle forwards the registration to the remote API. No session is
// created; the caller signs in afterwards.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.auth.SignUp(ctx, ports.SignUpRequest{
		Email:         cmd.Email(),
		Password:      cmd.Password(),
		FirstName:     cmd.FirstName(),
		LastName:      cmd.LastName(),
		ContactNumber: cmd.ContactNumber(),
	})
}
