package http

import (
	"errors"
	"net/http"

	"storefront/internal/adapters/out/upgradapi"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Redirect hints where the client should navigate to recover. Set only
	// for failures that cannot be resolved on the current page, such as a
	// checkout entered without a product selection.
	Redirect string `json:"redirect,omitempty"`
}

// respondError translates an application error into an HTTP response. The
// message is the user-facing one from the error taxonomy.
func respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	resp := ErrorResponse{
		Code:    statusFor(err),
		Message: userMessage(err),
	}
	if errors.Is(err, errs.ErrMissingContext) {
		resp.Redirect = "/products"
	}

	return ctx.JSON(resp.Code, resp)
}

// userMessage resolves the response message. Taxonomy errors carry their own
// user-facing message; outside the taxonomy a message from the remote API is
// shown as is, for example a sign in rejection.
func userMessage(err error) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		return um.UserMessage()
	}

	var remote *upgradapi.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}

	return errs.UserMessage(err)
}

func statusFor(err error) int {
	var notFound *errs.ObjectNotFoundError
	var remote *upgradapi.RemoteError

	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	case errors.As(err, &notFound), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, commands.ErrAdminRoleRequired):
		return http.StatusForbidden

	case errors.Is(err, errs.ErrMissingContext),
		errors.Is(err, checkout.ErrOperationInFlight),
		errors.Is(err, checkout.ErrOrderAlreadyConfirmed),
		errors.Is(err, checkout.ErrCheckoutClosed):
		return http.StatusConflict

	case errors.Is(err, errs.ErrAddressFetch),
		errors.Is(err, errs.ErrAddressCreate),
		errors.Is(err, errs.ErrOrderSubmit):
		return http.StatusBadGateway

	case errors.As(err, &remote):
		// A 4xx from the remote API is the caller's fault, for example bad
		// credentials on sign in. Anything else is an upstream failure.
		if remote.StatusCode >= http.StatusBadRequest && remote.StatusCode < http.StatusInternalServerError {
			return remote.StatusCode
		}
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
