package address

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Address is a delivery address owned by the remote storefront API. The id
// is assigned remotely on creation; the storefront only holds read-only
// copies fetched for the current user.
type Address struct {
	ID            kernel.ID
	Name          string
	ContactNumber string
	Street        string
	City          string
	State         string
	ZipCode       string

	// Landmark is optional and may be empty.
	Landmark string
}

// NewAddress builds the entity for a draft the remote API just accepted,
// attaching the server-assigned identifier.
func NewAddress(id kernel.ID, draft Draft) (Address, error) {
	if err := id.Validate(); err != nil {
		return Address{}, err
	}
	if err := draft.Validate(); err != nil {
		return Address{}, err
	}

	return Address{
		ID:            id,
		Name:          draft.Name(),
		ContactNumber: draft.ContactNumber(),
		Street:        draft.Street(),
		City:          draft.City(),
		State:         draft.State(),
		ZipCode:       draft.ZipCode(),
		Landmark:      draft.Landmark(),
	}, nil
}

// Validate checks that a fetched record is usable as a delivery target.
func (a Address) Validate() error {
	var fieldErr error
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"contactNumber", a.ContactNumber},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
	} {
		if f.value == "" {
			fieldErr = errors.Join(fieldErr, errs.NewValueIsRequiredError(f.name))
		}
	}

	return errors.Join(a.ID.Validate(), fieldErr)
}
