package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderResult summarizes the placed order.
type CreateOrderResult struct {
	OrderID               kernel.UUID
	Status                order.Status
	TotalAmount           decimal.Decimal
	TotalFormatted        string
	ItemCount             int
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
}

// CreateOrderCommandHandler places orders. The customer must exist and be
// active and every requested food must be on the menu. Item names and prices
// are copied from the menu at this moment.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher, ports.NotifyAsync)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(result.TotalFormatted)
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	mode       ports.NotifyMode
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	mode ports.NotifyMode,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mode:       mode,
	}
}

// Handle persists the order and raises OrderCreated after the commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := load(ctx, uow.UserRepository().Get, cmd.UserID(), "user")
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !customer.IsActive() {
		return CreateOrderResult{}, errs.NewDomainErrorf("user %s is inactive", customer.ID())
	}

	foodRepo := uow.FoodRepository()
	requested := cmd.Items()
	items := make([]order.Item, 0, len(requested))
	for _, line := range requested {
		dish, err := load(ctx, foodRepo.Get, line.FoodID, "food")
		if err != nil {
			return CreateOrderResult{}, err
		}
		if !dish.IsAvailable() {
			return CreateOrderResult{}, errs.NewDomainErrorf("food %s is not available", dish.Name())
		}

		item, err := order.NewItem(dish.ID(), dish.Name(), line.Quantity, dish.Price(), line.Notes)
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(customer.ID(), items, cmd.DeliveryAddress(), cmd.DeliveryNotes())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.publisher.Publish(ctx, h.mode, events.NewOrderCreated(o, customer, time.Now()))

	return CreateOrderResult{
		OrderID:               o.ID(),
		Status:                o.Status(),
		TotalAmount:           o.TotalAmount(),
		TotalFormatted:        o.TotalFormatted(),
		ItemCount:             o.ItemCount(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
	}, nil
}
