package cmd

import (
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases. publisher may be nil when Kafka is not configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateInitCancelOrderCommandHandler() commands.InitCancelOrderCommandHandler {
	return commands.NewInitCancelOrderCommandHandler(c.orderUoWFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateCancelExpiredOrdersCommandHandler() commands.CancelExpiredOrdersCommandHandler {
	return commands.NewCancelExpiredOrdersCommandHandler(c.orderUoWFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer exposes every use case over HTTP.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	payOrder := c.CreatePayOrderCommandHandler()
	approveOrder := c.CreateApproveOrderCommandHandler()
	initCancelOrder := c.CreateInitCancelOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     &createOrder,
		PayOrder:        &payOrder,
		ApproveOrder:    &approveOrder,
		InitCancelOrder: &initCancelOrder,
		CancelOrder:     &cancelOrder,
		GetOrderStatus:  c.CreateGetOrderStatusQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	cancelExpired := c.CreateCancelExpiredOrdersCommandHandler()

	return jobs.NewJobManager(
		jobs.NewPaymentTimeoutJob(&cancelExpired, c.config.PaymentTimeoutSchedule, c.config.PaymentTimeout, c.logger),
	)
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactoryFunc() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
