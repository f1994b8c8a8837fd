package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrEmailIsRequired     = errors.New("email is required")
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

// SignUpCommand represents a request to register a new account with the
// remote storefront API. Registration does not sign the user in; a
// SignInCommand follows once the account exists.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	email         string
	password      string
	firstName     string
	lastName      string
	contactNumber string

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a sign-up command. Email, password and both
// names are required; the contact number is optional and passed through to
// the remote API as given.
func NewSignUpCommand(email, password, firstName, lastName, contactNumber string) (SignUpCommand, error) {
	cmd := SignUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
	); err != nil {
		return SignUpCommand{}, err
	}

	cmd.contactNumber = strings.TrimSpace(contactNumber)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// Email returns the new account's email, which doubles as its username.
func (c SignUpCommand) Email() string {
	return c.email
}

// Password returns the new account's password.
func (c SignUpCommand) Password() string {
	return c.password
}

// FirstName returns the account holder's first name.
func (c SignUpCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c SignUpCommand) LastName() string {
	return c.lastName
}

// ContactNumber returns the optional phone number, possibly empty.
func (c SignUpCommand) ContactNumber() string {
	return c.contactNumber
}

func (c *SignUpCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *SignUpCommand) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *SignUpCommand) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}
