package kernel

import (
	"strings"

	"storefront/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
// Remote identifiers must be created via NewID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is an identifier assigned by the remote storefront API to one of its
// resources (products, addresses). The storefront never mints these itself;
// it only carries them between calls. An ID is an opaque non-empty string.
type ID struct {
	value string
}

// NewID creates an ID from its remote string form. Surrounding whitespace is
// trimmed; an empty identifier is invalid.
func NewID(value string) (ID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// String returns the identifier exactly as the remote API issued it.
func (id ID) String() string {
	return id.value
}

// IsEqual compares two identifiers for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate checks if the ID is properly constructed. Returns
// ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
