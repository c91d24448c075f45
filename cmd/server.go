package cmd

import (
	"log/slog"

	httpin "shop/internal/adapters/in/http"
	"shop/internal/health"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewHTTPServer wires the customer order API and its ancillary endpoints.
func (c *CompositionRoot) NewHTTPServer(config Config, log *slog.Logger, healthHandler *health.Handler) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := httpin.NewServer(
		c.CreateCreateCustomerOrderCommandHandler(),
		c.CreateUpdateCustomerOrderCommandHandler(),
		c.CreateDeleteCustomerOrderCommandHandler(),
		c.CreateGetCustomerOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		config.AppName,
		config.MaxPageSize,
	)

	routerConfig := httpin.RouterConfig{
		Server:           server,
		Doc:              doc,
		Logger:           log,
		LogLevel:         config.LogLevel,
		Registry:         registry,
		ValidateRequests: config.OpenAPIValidation,
	}
	if healthHandler != nil {
		routerConfig.Health = healthHandler
	}

	return httpin.NewRouter(routerConfig)
}
