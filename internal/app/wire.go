//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "freight/internal/gateway/kafka/notification"
	"freight/internal/handlers/rest/bestfit_post"
	"freight/internal/handlers/rest/shipment_bestfit_get"
	"freight/internal/handlers/rest/shipment_delete"
	"freight/internal/handlers/rest/shipment_get"
	"freight/internal/handlers/rest/shipment_post"
	"freight/internal/handlers/rest/shipment_put"
	"freight/internal/handlers/rest/shipments_get"
	"freight/internal/handlers/rest/truck_delete"
	"freight/internal/handlers/rest/truck_put"
	"freight/internal/handlers/rest/trucks_get"
	"freight/internal/handlers/rest/trucks_post"
	"freight/internal/handlers/rest/warehouse_post"
	"freight/internal/handlers/rest/warehouses_get"
	"freight/internal/handlers/tasks/shipment_metrics"
	"freight/internal/pkg/config"
	"freight/internal/pkg/kafka"

	shipmentRepo "freight/internal/repository/shipment"
	truckRepo "freight/internal/repository/truck"
	warehouseRepo "freight/internal/repository/warehouse"
	matcherService "freight/internal/service/matcher"
	shipmentService "freight/internal/service/shipment"
	truckService "freight/internal/service/truck"
	warehouseService "freight/internal/service/warehouse"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MetricsInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceMatcher    ServiceMatcher
	ServiceTruck      ServiceTruck
	ServiceWarehouse  ServiceWarehouse
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_put.Service
	shipment_delete.Service
	shipments_get.Service
}

type ServiceMatcher interface {
	bestfit_post.Service
	shipment_bestfit_get.Service
}

type ServiceTruck interface {
	trucks_post.Service
	trucks_get.Service
	truck_put.Service
	truck_delete.Service
}

type ServiceWarehouse interface {
	warehouse_post.Service
	warehouses_get.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMetricsInterval,

		provideTruckRepository,
		provideShipmentRepository,
		provideWarehouseRepository,

		provideNotificationGateway,

		provideServiceWarehouse,
		provideServiceTruck,
		provideServiceShipment,
		provideServiceMatcher,

		provideShipmentMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceMatcher), new(*matcherService.Matcher)),
		wire.Bind(new(ServiceTruck), new(*truckService.Service)),
		wire.Bind(new(ServiceWarehouse), new(*warehouseService.Service)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.WarehouseProvider), new(*warehouseService.Service)),
		wire.Bind(new(shipmentService.TruckProvider), new(*truckService.Service)),
		wire.Bind(new(shipmentService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(truckService.Repository), new(*truckRepo.Repository)),
		wire.Bind(new(warehouseService.Repository), new(*warehouseRepo.Repository)),
		wire.Bind(new(matcherService.Repository), new(*truckRepo.Repository)),
		wire.Bind(new(matcherService.ShipmentProvider), new(*shipmentService.Service)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(truckService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipment_metrics.Service), new(*shipmentService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTruckRepository(querier *querier.Querier) *truckRepo.Repository {
	return truckRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideWarehouseRepository(querier *querier.Querier) *warehouseRepo.Repository {
	return warehouseRepo.New(querier)
}

func provideNotificationGateway(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *notificationGateway.NotificationGateway {
	return notificationGateway.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceWarehouse(repository warehouseService.Repository) *warehouseService.Service {
	return warehouseService.New(repository)
}

func provideServiceTruck(
	repository truckService.Repository,
	txManager truckService.TxManager,
) *truckService.Service {
	return truckService.New(repository, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	warehouses shipmentService.WarehouseProvider,
	trucks shipmentService.TruckProvider,
	notifier shipmentService.Notifier,
	txManager shipmentService.TxManager,
) *shipmentService.Service {
	return shipmentService.New(repository, warehouses, trucks, notifier, txManager)
}

func provideServiceMatcher(
	repository matcherService.Repository,
	shipments matcherService.ShipmentProvider,
) *matcherService.Matcher {
	return matcherService.New(repository, shipments)
}

func provideMetricsInterval(cfg *config.Config) MetricsInterval {
	return MetricsInterval(cfg.Tasks.ShipmentMetricsUpdateInterval)
}

func provideShipmentMetricsTask(
	log logger.Logger,
	shipmentService shipment_metrics.Service,
	interval MetricsInterval,
) *shipment_metrics.ShipmentMetrics {
	return shipment_metrics.NewShipmentMetrics(log, shipmentService, time.Duration(interval))
}

func provideTaskList(
	shipmentMetricsTask *shipment_metrics.ShipmentMetrics,
) []background.Task {
	return []background.Task{
		shipmentMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
