// Package http is the inbound HTTP adapter. It exposes the storefront
// workflow over a JSON API on echo, translating requests into commands and
// queries and application errors into status codes via the error taxonomy.
package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionHeader carries the session identifier issued at sign in. Every
// request past authentication must present it.
const SessionHeader = "X-Session-Id"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	SignIn        commands.SignInCommandHandler
	SignUp        commands.SignUpCommandHandler
	StartCheckout commands.StartCheckoutCommandHandler
	Advance       commands.AdvanceCheckoutCommandHandler
	Back          commands.BackCheckoutCommandHandler
	Reset         commands.ResetCheckoutCommandHandler
	SelectAddress commands.SelectAddressCommandHandler
	CreateAddress commands.CreateAddressCommandHandler
	CreateProduct commands.CreateProductCommandHandler

	GetCheckout    queries.GetCheckoutQueryHandler
	ListProducts   queries.ListProductsQueryHandler
	GetProduct     queries.GetProductQueryHandler
	ListCategories queries.ListCategoriesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	gatherer prometheus.Gatherer
}

// NewServer creates a new HTTP server dispatching to the given handlers.
// The gatherer backs the /metrics endpoint and may be nil to disable it.
func NewServer(handlers Handlers, gatherer prometheus.Gatherer) *Server {
	return &Server{
		handlers: handlers,
		gatherer: gatherer,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()

	api := e.Group("/api/v1")
	api.POST("/auth/signin", s.SignIn)
	api.POST("/auth/signup", s.SignUp)

	api.GET("/products", s.ListProducts)
	api.GET("/products/categories", s.ListCategories)
	api.GET("/products/:id", s.GetProduct)
	api.POST("/products", s.CreateProduct)

	api.POST("/checkout", s.StartCheckout)
	api.GET("/checkout", s.GetCheckout)
	api.POST("/checkout/next", s.AdvanceCheckout)
	api.POST("/checkout/back", s.BackCheckout)
	api.POST("/checkout/reset", s.ResetCheckout)
	api.POST("/checkout/address", s.SelectAddress)
	api.POST("/checkout/addresses", s.CreateAddress)

	e.GET("/health", s.Health)
	if s.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(
			promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
}

// SignIn handles POST /api/v1/auth/signin - exchanges credentials for a
// session.
func (s *Server) SignIn(ctx echo.Context) error {
	var req signInRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewSignInCommand(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, signInResponse{
		SessionID: result.SessionID.String(),
		Role:      result.Role.String(),
	})
}

// SignUp handles POST /api/v1/auth/signup - registers a new account with the
// remote API.
func (s *Server) SignUp(ctx echo.Context) error {
	var req signUpRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewSignUpCommand(
		req.Email, req.Password, req.FirstName, req.LastName, req.ContactNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.SignUp.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListProducts handles GET /api/v1/products - returns the catalog filtered
// by the category, search and sortBy query parameters.
func (s *Server) ListProducts(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListProductsQuery(
		sessionID,
		ctx.QueryParam("category"),
		ctx.QueryParam("search"),
		queries.SortOrderFromString(ctx.QueryParam("sortBy")),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]productResponse, len(views))
	for i, view := range views {
		response[i] = toProductResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListCategories handles GET /api/v1/products/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListCategoriesQuery(sessionID)
	if err != nil {
		return respondError(ctx, err)
	}

	categories, err := s.handlers.ListCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(sessionID, productID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(view))
}

// CreateProduct handles POST /api/v1/products - adds a catalog item. The
// session must carry the admin role.
func (s *Server) CreateProduct(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	cmd, err := commands.NewCreateProductCommand(
		sessionID,
		req.Name, req.Category,
		req.Price,
		req.Description, req.Manufacturer,
		req.AvailableItems,
		req.ImageURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StartCheckout handles POST /api/v1/checkout - begins a checkout for the
// given product and quantity, replacing any previous one.
func (s *Server) StartCheckout(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req startCheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	productID, err := kernel.NewID(req.ProductID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartCheckoutCommand(sessionID, productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.StartCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.checkoutView(ctx, sessionID, http.StatusCreated)
}

// GetCheckout handles GET /api/v1/checkout - returns the checkout state.
func (s *Server) GetCheckout(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.checkoutView(ctx, sessionID, http.StatusOK)
}

// AdvanceCheckout handles POST /api/v1/checkout/next - moves the checkout
// one step forward, loading addresses or placing the order as the step
// requires.
func (s *Server) AdvanceCheckout(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceCheckoutCommand(sessionID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.Advance.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.checkoutView(ctx, sessionID, http.StatusOK)
}

// BackCheckout handles POST /api/v1/checkout/back.
func (s *Server) BackCheckout(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBackCheckoutCommand(sessionID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.Back.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.checkoutView(ctx, sessionID, http.StatusOK)
}

// ResetCheckout handles POST /api/v1/checkout/reset - returns the checkout
// to the first step, keeping the product selection.
func (s *Server) ResetCheckout(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewResetCheckoutCommand(sessionID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.Reset.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.checkoutView(ctx, sessionID, http.StatusOK)
}

// SelectAddress handles POST /api/v1/checkout/address - picks one of the
// already loaded delivery addresses.
func (s *Server) SelectAddress(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req selectAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	addressID, err := kernel.NewID(req.AddressID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSelectAddressCommand(sessionID, addressID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.SelectAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.checkoutView(ctx, sessionID, http.StatusOK)
}

// CreateAddress handles POST /api/v1/checkout/addresses - saves a new
// delivery address remotely and selects it.
func (s *Server) CreateAddress(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	cmd, err := commands.NewCreateAddressCommand(
		sessionID,
		req.Name, req.ContactNumber, req.Street, req.City, req.State,
		req.ZipCode, req.Landmark,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAddressResponse(created))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// checkoutView responds with the current checkout read model.
func (s *Server) checkoutView(ctx echo.Context, sessionID kernel.UUID, status int) error {
	query, err := queries.NewGetCheckoutQuery(sessionID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetCheckout.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, toCheckoutResponse(view))
}

// sessionID extracts the session identifier from the request header.
func (s *Server) sessionID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(SessionHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(SessionHeader + " header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(SessionHeader+" header", err)
	}
	return id, nil
}

func bindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
