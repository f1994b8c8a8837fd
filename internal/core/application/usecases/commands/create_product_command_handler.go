package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrAdminRoleRequired is returned when a non-admin session tries to
// manage the catalog.
var ErrAdminRoleRequired = errors.New("admin role required")

// CreateProductCommandHandler adds catalog items on behalf of admins.
type CreateProductCommandHandler struct {
	catalog  ports.CatalogGateway
	sessions ports.SessionRepository
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(
	catalog ports.CatalogGateway, sessions ports.SessionRepository,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Handle submits the item. Success is recognized only by the server
// confirming with "Product <name> added successfully", the remote API's
// established contract; a 2xx with any other body is reported as a
// failure carrying that body's message.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if sess.Role() != session.RoleAdmin {
		return ErrAdminRoleRequired
	}

	message, err := h.catalog.CreateProduct(ctx, sess.Token(), ports.NewProduct{
		Name:           cmd.Name(),
		Category:       cmd.Category(),
		Price:          cmd.Price(),
		Description:    cmd.Description(),
		Manufacturer:   cmd.Manufacturer(),
		AvailableItems: cmd.AvailableItems(),
		ImageURL:       cmd.ImageURL(),
	})
	if err != nil {
		return err
	}

	if message != fmt.Sprintf("Product %s added successfully", cmd.Name()) {
		return errs.NewValueIsInvalidError("message")
	}
	return nil
}
