package session

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrSessionIsNotConstructed is returned when a Session was created without
// NewSession.
var ErrSessionIsNotConstructed = errors.New("session is not constructed, use NewSession constructor")

// Session is an authenticated user's server-side state: the remote auth
// token, the role it carries, when it stops being usable and, once shopping
// begins, the checkout workflow attached to it.
//
// A session owns at most one checkout at a time. Starting a new checkout
// closes the previous one, so a completion arriving for the old instance
// finds it closed and is dropped.
type Session struct {
	id        kernel.UUID
	token     string
	role      Role
	expiresAt time.Time

	checkout *checkout.Checkout

	isConstructed bool
}

// NewSession creates a Session for a freshly signed-in user.
func NewSession(id kernel.UUID, token string, role Role, expiresAt time.Time) (*Session, error) {
	var errsJoin []error

	if err := id.Validate(); err != nil {
		errsJoin = append(errsJoin, err)
	}
	if strings.TrimSpace(token) == "" {
		errsJoin = append(errsJoin, errs.NewValueIsRequiredError("token"))
	}
	if err := role.Validate(); err != nil {
		errsJoin = append(errsJoin, err)
	}
	if expiresAt.IsZero() {
		errsJoin = append(errsJoin, errs.NewValueIsRequiredError("expiresAt"))
	}

	if len(errsJoin) > 0 {
		return nil, errors.Join(errsJoin...)
	}

	return &Session{
		id:            id,
		token:         token,
		role:          role,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was properly constructed through
// NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Token returns the remote auth token sent with every outbound API call.
func (s *Session) Token() string {
	return s.token
}

// Role returns the access level granted at sign-in.
func (s *Session) Role() Role {
	return s.role
}

// ExpiresAt returns the instant after which the session must not be used.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// Expired reports whether the session is past its lifetime at the given
// instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// StartCheckout opens a checkout workflow for the given product selection.
// Any checkout already in progress is closed first, so there is never more
// than one live cart per session.
func (s *Session) StartCheckout(selection product.Selection) (*checkout.Checkout, error) {
	c, err := checkout.NewCheckout(s.id, selection)
	if err != nil {
		return nil, err
	}

	if s.checkout != nil {
		s.checkout.Close()
	}
	s.checkout = c
	return c, nil
}

// Checkout returns the checkout in progress, or ObjectNotFoundError when
// the session has none.
func (s *Session) Checkout() (*checkout.Checkout, error) {
	if s.checkout == nil {
		return nil, errs.NewObjectNotFoundError("checkout", s.id)
	}
	return s.checkout, nil
}

// EndCheckout closes and detaches the current checkout, if any. Safe to
// call on a session that has none.
func (s *Session) EndCheckout() {
	if s.checkout == nil {
		return
	}
	s.checkout.Close()
	s.checkout = nil
}
