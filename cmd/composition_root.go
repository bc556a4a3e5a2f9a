package cmd

import (
	"log/slog"

	httpin "driverroutes/internal/adapters/in/http"
	"driverroutes/internal/adapters/out/backendapi"
	"driverroutes/internal/core/application/usecases/commands"
	"driverroutes/internal/core/application/usecases/queries"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/jobs"
	"driverroutes/internal/pkg/clock"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	auth           *backendapi.SessionTokenProvider
	catalogGateway *backendapi.CatalogGateway
	orderBackend   *backendapi.OrderBackend
	routeBackend   *backendapi.RouteBackend
	rosterCache    *jobs.RosterCache
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	auth := backendapi.NewSessionTokenProvider(config.BackendServiceToken)
	backendConfig := backendapi.Config{BaseURL: config.BackendAPIURL}

	catalogGateway, err := backendapi.NewCatalogGateway(backendConfig, auth)
	if err != nil {
		return CompositionRoot{}, err
	}

	orderBackend, err := backendapi.NewOrderBackend(backendConfig, auth)
	if err != nil {
		return CompositionRoot{}, err
	}

	routeBackend, err := backendapi.NewRouteBackend(backendConfig, auth)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:         config,
		logger:         logger,
		auth:           auth,
		catalogGateway: catalogGateway,
		orderBackend:   orderBackend,
		routeBackend:   routeBackend,
		rosterCache:    jobs.NewRosterCache(routeBackend),
	}, nil
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	validator := services.NewOrderValidator(clock.NewSystem())
	return commands.NewSubmitOrderCommandHandler(c.orderBackend, validator)
}

func (c *CompositionRoot) CreateMarkArrivedCommandHandler() commands.MarkArrivedCommandHandler {
	return commands.NewMarkArrivedCommandHandler(c.routeBackend, c.logger)
}

func (c *CompositionRoot) CreateAttachProofCommandHandler() commands.AttachProofCommandHandler {
	return commands.NewAttachProofCommandHandler(c.routeBackend, c.logger)
}

func (c *CompositionRoot) CreateGetOrderFormQueryHandler() queries.GetOrderFormQueryHandler {
	return queries.NewGetOrderFormQueryHandler(c.catalogGateway, c.logger)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.rosterCache)
}

func (c *CompositionRoot) CreateGetDeliveryRouteQueryHandler() queries.GetDeliveryRouteQueryHandler {
	return queries.NewGetDeliveryRouteQueryHandler(c.routeBackend)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateMarkArrivedCommandHandler(),
		c.CreateAttachProofCommandHandler(),
		c.CreateGetOrderFormQueryHandler(),
		c.CreateGetDriversQueryHandler(),
		c.CreateGetDeliveryRouteQueryHandler(),
		c.orderBackend,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.rosterCache, c.config.RosterCronSchedule, c.logger)
}
