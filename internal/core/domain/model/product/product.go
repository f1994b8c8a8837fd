package product

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Product is the read model of a catalog record owned by the remote
// storefront API. The storefront never mutates products outside the admin
// create operation; instances are decoded from remote payloads and validated
// before use.
type Product struct {
	ID             kernel.ID
	Name           string
	Price          kernel.Money
	ImageURL       string
	Description    string
	Category       string
	Manufacturer   string
	AvailableItems int

	// CreatedAt is present only when the remote record carries a creation
	// timestamp; it is used solely for newest-first catalog sorting.
	CreatedAt *time.Time
}

// Validate checks that the record carries everything a checkout needs:
// a remote identifier, a name, and a constructed (positive) price.
// Available stock may legitimately be zero.
func (p Product) Validate() error {
	var nameErr error
	if p.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	var stockErr error
	if p.AvailableItems < 0 {
		stockErr = errs.NewValueIsInvalidError("availableItems")
	}

	return errors.Join(
		p.ID.Validate(),
		nameErr,
		p.Price.Validate(),
		stockErr,
	)
}
