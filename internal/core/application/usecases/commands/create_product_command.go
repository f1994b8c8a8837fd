package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired     = errors.New("product name is required")
	ErrProductCategoryIsRequired = errors.New("product category is required")
	ErrProductPriceIsInvalid     = errors.New("product price must be greater than 0")
	ErrProductStockIsInvalid     = errors.New("available items must not be negative")
)

// CreateProductCommand represents an admin's request to add a catalog
// item.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sessionID      kernel.UUID
	name           string
	category       string
	price          float64
	description    string
	manufacturer   string
	availableItems int
	imageURL       string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog item. Name,
// category and a positive price are required; the rest is passed through.
func NewCreateProductCommand(
	sessionID kernel.UUID,
	name, category string,
	price float64,
	description, manufacturer string,
	availableItems int,
	imageURL string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
		cmd.setAvailableItems(availableItems),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.description = description
	cmd.manufacturer = manufacturer
	cmd.imageURL = imageURL
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// SessionID returns the admin's session.
func (c CreateProductCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Name returns the new item's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Category returns the catalog category the item belongs to.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Price returns the unit price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Description returns the optional long description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Manufacturer returns the optional manufacturer name.
func (c CreateProductCommand) Manufacturer() string {
	return c.manufacturer
}

// AvailableItems returns the initial stock level.
func (c CreateProductCommand) AvailableItems() int {
	return c.availableItems
}

// ImageURL returns the optional product image location.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateProductCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrProductCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setAvailableItems(availableItems int) error {
	if availableItems < 0 {
		return ErrProductStockIsInvalid
	}

	c.availableItems = availableItems
	return nil
}
