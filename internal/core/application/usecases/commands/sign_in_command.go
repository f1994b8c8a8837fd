package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/guard"
)

var (
	ErrSignInCommandIsNotConstructed = errors.New(
		"SignInCommand must be created via NewSignInCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// SignInCommand represents a request to authenticate against the remote
// storefront API and open a server-side session.
//
// Example:
//
//	cmd, err := NewSignInCommand("asha@example.com", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid credentials input: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("sign-in rejected: %w", err)
//	}
//	fmt.Printf("session %s opened with role %s", result.SessionID, result.Role)
type SignInCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a sign-in command. Both fields are required;
// whitespace-only values are rejected.
func NewSignInCommand(username, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Username returns the sign-in identifier (the account's email).
func (c SignInCommand) Username() string {
	return c.username
}

// Password returns the account password.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *SignInCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
