package address

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created through
// the NewDraft constructor.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// User-facing reasons for draft rejection. These match the storefront's
// established copy and are carried on the ValidationError for the field
// that failed.
const (
	reasonFieldRequired        = "Please fill all mandatory address fields."
	reasonContactNumberInvalid = "Contact number must be a 10-digit number."
	reasonZipCodeInvalid       = "Zip code must be a 6-digit number."
)

const (
	contactNumberLength = 10
	zipCodeLength       = 6
)

// Draft holds user-entered address fields before the remote API has accepted
// them and assigned an id. Construction performs all local validation, so a
// Draft that exists is guaranteed to be worth a network call: every rule
// violation fails here with a field-identified ValidationError and no request
// is ever issued for it.
//
// Rules:
//   - name, contactNumber, street, city, state, zipCode are mandatory
//   - contactNumber must be exactly 10 digits
//   - zipCode must be exactly 6 digits
//   - landmark is optional
type Draft struct {
	name          string
	contactNumber string
	street        string
	city          string
	state         string
	zipCode       string
	landmark      string

	guard guard.ConstructorGuard
}

// NewDraft creates a validated address draft. Validation mirrors the order a
// shopper sees it: mandatory fields first, then the digit rules. The first
// violated rule is reported; no network call should be made for a draft that
// failed to construct.
func NewDraft(name, contactNumber, street, city, state, zipCode, landmark string) (Draft, error) {
	for _, f := range []struct {
		field string
		value string
	}{
		{"name", name},
		{"contactNumber", contactNumber},
		{"street", street},
		{"city", city},
		{"state", state},
		{"zipCode", zipCode},
	} {
		if f.value == "" {
			return Draft{}, errs.NewValidationError(f.field, reasonFieldRequired)
		}
	}

	if len(contactNumber) != contactNumberLength || !isDigits(contactNumber) {
		return Draft{}, errs.NewValidationError("contactNumber", reasonContactNumberInvalid)
	}

	if len(zipCode) != zipCodeLength || !isDigits(zipCode) {
		return Draft{}, errs.NewValidationError("zipCode", reasonZipCodeInvalid)
	}

	return Draft{
		name:          name,
		contactNumber: contactNumber,
		street:        street,
		city:          city,
		state:         state,
		zipCode:       zipCode,
		landmark:      landmark,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the draft was created through NewDraft.
func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// Name returns the addressee's name.
func (d Draft) Name() string { return d.name }

// ContactNumber returns the 10-digit contact number.
func (d Draft) ContactNumber() string { return d.contactNumber }

// Street returns the street line.
func (d Draft) Street() string { return d.street }

// City returns the city.
func (d Draft) City() string { return d.city }

// State returns the state.
func (d Draft) State() string { return d.state }

// ZipCode returns the 6-digit zip code.
func (d Draft) ZipCode() string { return d.zipCode }

// Landmark returns the optional landmark, possibly empty.
func (d Draft) Landmark() string { return d.landmark }

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
