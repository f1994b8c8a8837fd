package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/pkg/errs"
)

func testSelection(t *testing.T) product.Selection {
	t.Helper()

	id, err := kernel.NewID("p1")
	require.NoError(t, err)
	price, err := kernel.MoneyFromFloat(250)
	require.NoError(t, err)

	sel, err := product.NewSelection(product.Product{
		ID:             id,
		Name:           "Desk Lamp",
		Price:          price,
		Category:       "Furniture",
		AvailableItems: 5,
	}, 2)
	require.NoError(t, err)
	return sel
}

func newSession(t *testing.T) *session.Session {
	t.Helper()

	s, err := session.NewSession(
		kernel.NewUUID(), "token-abc", session.RoleUser, time.Now().Add(30*time.Minute))
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	t.Run("valid_arguments", func(t *testing.T) {
		id := kernel.NewUUID()
		expiry := time.Now().Add(time.Hour)

		s, err := session.NewSession(id, "token-abc", session.RoleAdmin, expiry)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "token-abc", s.Token())
		assert.Equal(t, session.RoleAdmin, s.Role())
		assert.Equal(t, expiry, s.ExpiresAt())
	})

	t.Run("invalid_arguments", func(t *testing.T) {
		tests := map[string]func() (*session.Session, error){
			"empty_id": func() (*session.Session, error) {
				return session.NewSession(kernel.UUID{}, "t", session.RoleUser, time.Now().Add(time.Hour))
			},
			"blank_token": func() (*session.Session, error) {
				return session.NewSession(kernel.NewUUID(), "   ", session.RoleUser, time.Now().Add(time.Hour))
			},
			"unknown_role": func() (*session.Session, error) {
				return session.NewSession(kernel.NewUUID(), "t", session.RoleUnknown, time.Now().Add(time.Hour))
			},
			"zero_expiry": func() (*session.Session, error) {
				return session.NewSession(kernel.NewUUID(), "t", session.RoleUser, time.Time{})
			},
		}

		for name, construct := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := construct()
				require.Error(t, err)
			})
		}
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var s session.Session

		assert.Equal(t, session.ErrSessionIsNotConstructed, s.Validate())
	})
}

func TestSessionExpired(t *testing.T) {
	s := newSession(t)

	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(time.Now().Add(time.Hour)))
	assert.True(t, s.Expired(s.ExpiresAt()))
}

func TestStartCheckout(t *testing.T) {
	t.Run("attaches_a_fresh_checkout", func(t *testing.T) {
		s := newSession(t)

		c, err := s.StartCheckout(testSelection(t))

		require.NoError(t, err)
		got, err := s.Checkout()
		require.NoError(t, err)
		assert.Same(t, c, got)
	})

	t.Run("replacing_closes_the_previous_cart", func(t *testing.T) {
		s := newSession(t)
		old, err := s.StartCheckout(testSelection(t))
		require.NoError(t, err)

		_, err = s.StartCheckout(testSelection(t))
		require.NoError(t, err)

		assert.True(t, old.Closed())
	})

	t.Run("invalid_selection_keeps_the_current_cart", func(t *testing.T) {
		s := newSession(t)
		current, err := s.StartCheckout(testSelection(t))
		require.NoError(t, err)

		var broken product.Selection
		_, err = s.StartCheckout(broken)

		require.ErrorIs(t, err, errs.ErrMissingContext)
		assert.False(t, current.Closed())
		got, err := s.Checkout()
		require.NoError(t, err)
		assert.Same(t, current, got)
	})
}

func TestCheckout(t *testing.T) {
	t.Run("not_found_before_shopping_starts", func(t *testing.T) {
		s := newSession(t)

		_, err := s.Checkout()

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestEndCheckout(t *testing.T) {
	t.Run("closes_and_detaches", func(t *testing.T) {
		s := newSession(t)
		c, err := s.StartCheckout(testSelection(t))
		require.NoError(t, err)

		s.EndCheckout()

		assert.True(t, c.Closed())
		_, err = s.Checkout()
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("noop_without_checkout", func(t *testing.T) {
		s := newSession(t)

		s.EndCheckout()

		_, err := s.Checkout()
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRoleFromString(t *testing.T) {
	tests := map[string]session.Role{
		"ADMIN":  session.RoleAdmin,
		"admin":  session.RoleAdmin,
		" USER ": session.RoleUser,
		"":       session.RoleUser,
		"STAFF":  session.RoleUser,
	}

	for input, want := range tests {
		t.Run("input_"+input, func(t *testing.T) {
			assert.Equal(t, want, session.RoleFromString(input))
		})
	}
}
