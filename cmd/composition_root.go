package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/memstore"
	"storefront/internal/adapters/out/upgradapi"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot wires the adapters to the application layer. It owns the
// shared infrastructure: the remote API client, the session store and the
// metrics registry.
type CompositionRoot struct {
	config   Config
	client   *upgradapi.Client
	sessions *memstore.SessionStore
	registry *prometheus.Registry
	logger   *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, err := upgradapi.NewClient(config.APIBaseURL, config.APITimeout, registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:   config,
		client:   client,
		sessions: memstore.NewSessionStore(),
		registry: registry,
		logger:   logger,
	}, nil
}

// CreateHTTPServer assembles the inbound HTTP server with all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	auth := upgradapi.NewAuthGateway(c.client, c.config.SessionTTL)
	catalog := upgradapi.NewCatalogGateway(c.client)
	addresses := upgradapi.NewAddressGateway(c.client)
	orders := upgradapi.NewOrderGateway(c.client)

	handlers := httpin.Handlers{
		SignIn:        commands.NewSignInCommandHandler(auth, c.sessions),
		SignUp:        commands.NewSignUpCommandHandler(auth),
		StartCheckout: commands.NewStartCheckoutCommandHandler(catalog, c.sessions),
		Advance:       commands.NewAdvanceCheckoutCommandHandler(addresses, orders, c.sessions),
		Back:          commands.NewBackCheckoutCommandHandler(c.sessions),
		Reset:         commands.NewResetCheckoutCommandHandler(c.sessions),
		SelectAddress: commands.NewSelectAddressCommandHandler(c.sessions),
		CreateAddress: commands.NewCreateAddressCommandHandler(addresses, c.sessions),
		CreateProduct: commands.NewCreateProductCommandHandler(catalog, c.sessions),

		GetCheckout:    queries.NewGetCheckoutQueryHandler(c.sessions),
		ListProducts:   queries.NewListProductsQueryHandler(catalog, c.sessions),
		GetProduct:     queries.NewGetProductQueryHandler(catalog, c.sessions),
		ListCategories: queries.NewListCategoriesQueryHandler(catalog, c.sessions),
	}

	return httpin.NewServer(handlers, c.registry)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.logger)
}
