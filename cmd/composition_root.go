package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/memory"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/migrations"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	uowFactory  ports.UnitOfWorkFactory
	reader      queries.OrderReader
	idGenerator ports.IdentifierGenerator
	registry    *prometheus.Registry
	closers     []func() error
}

// NewCompositionRoot wires the storage backend and the event publisher selected
// by cfg. Close releases what it opened.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:      cfg,
		logger:      logger,
		idGenerator: kernel.NewUUIDGenerator(),
		registry:    prometheus.NewRegistry(),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	publisher := c.createPublisher()

	switch cfg.Storage {
	case StoragePostgres:
		if err := c.usePostgres(ctx, publisher); err != nil {
			_ = c.Close()
			return nil, err
		}
	default:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store, publisher, logger)
		c.reader = memory.NewOrderRepository(store)
	}

	logger.InfoContext(ctx, "Composition root ready",
		"storage", cfg.Storage,
		"events", cfg.Kafka.Brokers != "",
	)
	return c, nil
}

func (c *CompositionRoot) createPublisher() ports.OrderEventPublisher {
	client := kafka.NewClient(c.config.Kafka.Brokers)
	if !client.Enabled() {
		return kafka.NewNoopPublisher()
	}

	publisher := kafka.NewOrderChangedPublisher(client, c.config.Kafka.OrderChangedTopic)
	c.closers = append(c.closers, publisher.Close)
	return publisher
}

func (c *CompositionRoot) usePostgres(ctx context.Context, publisher ports.OrderEventPublisher) error {
	gormDB, err := gorm.Open(gorm_postgres.Open(c.config.DB.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if c.config.DB.MigrateOnStart {
		if _, err = migrations.Up(ctx, sqlDB, c.logger); err != nil {
			return err
		}
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, c.logger)
	c.reader = orderrepo.NewGormOrderRepository(gormDB, nil)
	return nil
}

// Close releases database connections and flushes the event writer.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	return commands.NewAddOrderLineCommandHandler(c.orderUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateUpdateOrderLineCommandHandler() commands.UpdateOrderLineCommandHandler {
	return commands.NewUpdateOrderLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	return commands.NewRemoveOrderLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStalePendingOrdersCommandHandler() commands.CancelStalePendingOrdersCommandHandler {
	return commands.NewCancelStalePendingOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

// CreateRouter builds the HTTP router with every use case attached.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		AddOrderLine:      c.CreateAddOrderLineCommandHandler(),
		UpdateOrderLine:   c.CreateUpdateOrderLineCommandHandler(),
		RemoveOrderLine:   c.CreateRemoveOrderLineCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, httpadapter.NewMetrics(c.registry), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStalePendingOrdersCommandHandler(),
		jobs.StaleOrdersConfig{
			TTL:      c.config.StaleOrders.TTL,
			Schedule: c.config.StaleOrders.Schedule,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
