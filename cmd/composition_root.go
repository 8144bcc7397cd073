package cmd

import (
	"log/slog"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/core/application/dispatcher"
	"foodorder/internal/core/application/eventhandlers"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
)

// CompositionRoot wires the ports chosen in main into the use cases.
type CompositionRoot struct {
	cfg        Config
	modes      NotifyModes
	uowFactory ports.UnitOfWorkFactory
	reads      ports.UnitOfWork
	notifier   ports.NotificationService
	events     *dispatcher.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot registers the dispatcher metrics on reg and subscribes
// the notification handlers to every domain event.
func NewCompositionRoot(
	cfg Config,
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.NotificationService,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	metrics, err := dispatcher.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		modes:      cfg.NotifyModes(),
		uowFactory: uowFactory,
		reads:      uowFactory.Create(),
		notifier:   notifier,
		events:     dispatcher.New(logger, metrics),
		logger:     logger,
	}
	c.registerEventHandlers()
	return c, nil
}

func (c *CompositionRoot) registerEventHandlers() {
	c.events.Register(events.TypeOrderCreated, eventhandlers.NewOrderCreatedHandler(c.notifier, c.logger))
	c.events.Register(events.TypeOrderStatusChanged, eventhandlers.NewOrderStatusChangedHandler(c.notifier, c.logger))
	c.events.Register(events.TypeOrderDelivered, eventhandlers.NewOrderDeliveredHandler(c.notifier))
	c.events.Register(events.TypeFoodReady, eventhandlers.NewFoodReadyHandler(c.notifier, c.logger))
	c.events.Register(
		events.TypeFoodAvailabilityChanged,
		eventhandlers.NewFoodAvailabilityChangedHandler(c.notifier, c.logger),
	)
}

// Dispatcher is exposed so main can drain asynchronous handlers on shutdown.
func (c *CompositionRoot) Dispatcher() *dispatcher.Dispatcher {
	return c.events
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) foodUoW() commands.FoodUoWFactory {
	return FuncFoodUoWFactory(func() commands.FoodUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.uow(), c.events, c.modes.OrderCreated)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.orderUoW(), c.events, c.modes.OrderUpdates)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoW(), c.events, c.modes.OrderUpdates, c.logger)
	return &h
}

func (c *CompositionRoot) CreateMarkOrderAsDeliveredCommandHandler() *commands.MarkOrderAsDeliveredCommandHandler {
	h := commands.NewMarkOrderAsDeliveredCommandHandler(c.orderUoW(), c.events, c.modes.OrderUpdates)
	return &h
}

func (c *CompositionRoot) CreateCreateFoodCommandHandler() *commands.CreateFoodCommandHandler {
	h := commands.NewCreateFoodCommandHandler(c.foodUoW())
	return &h
}

func (c *CompositionRoot) CreateMarkFoodAsReadyCommandHandler() *commands.MarkFoodAsReadyCommandHandler {
	h := commands.NewMarkFoodAsReadyCommandHandler(c.foodUoW(), c.events, c.modes.Food)
	return &h
}

func (c *CompositionRoot) CreateToggleFoodAvailabilityCommandHandler() *commands.ToggleFoodAvailabilityCommandHandler {
	h := commands.NewToggleFoodAvailabilityCommandHandler(c.foodUoW(), c.events, c.modes.Food)
	return &h
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() *commands.CreateUserCommandHandler {
	h := commands.NewCreateUserCommandHandler(c.userUoW())
	return &h
}

func (c *CompositionRoot) CreateNotifyLateOrdersCommandHandler() *commands.NotifyLateOrdersCommandHandler {
	h := commands.NewNotifyLateOrdersCommandHandler(c.orderUoW(), c.notifier)
	return &h
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.reads.OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reads.OrderRepository(), c.reads.UserRepository())
}

func (c *CompositionRoot) CreateListFoodsQueryHandler() queries.ListFoodsQueryHandler {
	return queries.NewListFoodsQueryHandler(c.reads.FoodRepository())
}

func (c *CompositionRoot) CreateListFreshFoodsQueryHandler() queries.ListFreshFoodsQueryHandler {
	return queries.NewListFreshFoodsQueryHandler(c.reads.FoodRepository())
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.reads.UserRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		MarkOrderAsDelivered:   c.CreateMarkOrderAsDeliveredCommandHandler(),
		GetOrderDetails:        c.CreateGetOrderDetailsQueryHandler(),
		ListOrders:             c.CreateListOrdersQueryHandler(),
		CreateFood:             c.CreateCreateFoodCommandHandler(),
		MarkFoodAsReady:        c.CreateMarkFoodAsReadyCommandHandler(),
		ToggleFoodAvailability: c.CreateToggleFoodAvailabilityCommandHandler(),
		ListFoods:              c.CreateListFoodsQueryHandler(),
		ListFreshFoods:         c.CreateListFreshFoodsQueryHandler(),
		CreateUser:             c.CreateCreateUserCommandHandler(),
		GetUser:                c.CreateGetUserQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewLateOrderJob(c.CreateNotifyLateOrdersCommandHandler(), c.cfg.LateOrderSchedule, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncFoodUoWFactory func() commands.FoodUoW

func (f FuncFoodUoWFactory) Create() commands.FoodUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
