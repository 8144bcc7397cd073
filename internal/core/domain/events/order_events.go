package events

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// OnTimeDeliveryLimit is the longest delivery still counted as on time.
const OnTimeDeliveryLimit = 60 * time.Minute

// OrderCreated is raised after a new order is persisted.
type OrderCreated struct {
	OrderID         kernel.UUID
	UserID          kernel.UUID
	UserName        string
	TotalAmount     decimal.Decimal
	TotalFormatted  string
	ItemCount       int
	Items           []ItemSummary
	DeliveryAddress string
	At              time.Time
}

func NewOrderCreated(o *order.Order, customer *user.User, at time.Time) OrderCreated {
	return OrderCreated{
		OrderID:         o.ID(),
		UserID:          o.UserID(),
		UserName:        customer.Name(),
		TotalAmount:     o.TotalAmount(),
		TotalFormatted:  o.TotalFormatted(),
		ItemCount:       o.ItemCount(),
		Items:           summarize(o.Items()),
		DeliveryAddress: o.DeliveryAddress(),
		At:              at,
	}
}

func (e OrderCreated) EventType() string     { return TypeOrderCreated }
func (e OrderCreated) OccurredAt() time.Time { return e.At }

func (e OrderCreated) NotificationTitle() string {
	return "🔔 Novo Pedido Recebido!"
}

// NotificationMessage reads e.g. "Maria fez um pedido de R$ 51,80 (2 itens)".
func (e OrderCreated) NotificationMessage() string {
	unit := "itens"
	if e.ItemCount == 1 {
		unit = "item"
	}
	return fmt.Sprintf("%s fez um pedido de %s (%d %s)", e.UserName, e.TotalFormatted, e.ItemCount, unit)
}

func (e OrderCreated) ShouldNotifyAdmins() bool {
	return true
}

// OrderStatusChanged is raised after any status change, cancellations included.
type OrderStatusChanged struct {
	OrderID          kernel.UUID
	UserID           kernel.UUID
	UserName         string
	OldStatus        order.Status
	NewStatus        order.Status
	NewStatusDisplay string
	ChangedBy        kernel.UUID
	ChangedByName    string
	OrderTotal       decimal.Decimal
	OrderItems       []ItemSummary
	At               time.Time
}

// NewOrderStatusChanged snapshots o after the change. owner placed the order,
// actor performed the change.
func NewOrderStatusChanged(o *order.Order, owner, actor *user.User, oldStatus order.Status, at time.Time) OrderStatusChanged {
	return OrderStatusChanged{
		OrderID:          o.ID(),
		UserID:           o.UserID(),
		UserName:         owner.Name(),
		OldStatus:        oldStatus,
		NewStatus:        o.Status(),
		NewStatusDisplay: o.Status().DisplayName(),
		ChangedBy:        actor.ID(),
		ChangedByName:    actor.Name(),
		OrderTotal:       o.TotalAmount(),
		OrderItems:       summarize(o.Items()),
		At:               at,
	}
}

func (e OrderStatusChanged) EventType() string     { return TypeOrderStatusChanged }
func (e OrderStatusChanged) OccurredAt() time.Time { return e.At }

func (e OrderStatusChanged) NotificationTitle() string {
	switch e.NewStatus {
	case order.Preparing:
		return "Preparando seu pedido"
	case order.Ready:
		return "Pedido pronto!"
	case order.OutForDelivery:
		return "Saiu para entrega"
	case order.Delivered:
		return "Pedido entregue"
	case order.Cancelled:
		return "Pedido cancelado"
	default:
		return "Status atualizado"
	}
}

func (e OrderStatusChanged) NotificationMessage() string {
	id := e.OrderID.Short()
	switch e.NewStatus {
	case order.Preparing:
		return fmt.Sprintf("Seu pedido #%s está sendo preparado! 👨‍🍳", id)
	case order.Ready:
		return fmt.Sprintf("Seu pedido #%s está pronto! ✅", id)
	case order.OutForDelivery:
		return fmt.Sprintf("Seu pedido #%s saiu para entrega! 🚗", id)
	case order.Delivered:
		return fmt.Sprintf("Pedido #%s foi entregue! 🎉", id)
	case order.Cancelled:
		return fmt.Sprintf("Pedido #%s foi cancelado.", id)
	default:
		return fmt.Sprintf("Status do pedido #%s atualizado.", id)
	}
}

// AdminNotificationMessage is only meaningful when ShouldNotifyAdmins is true.
func (e OrderStatusChanged) AdminNotificationMessage() string {
	action := "cancelou o pedido"
	if e.NewStatus == order.Delivered {
		action = "confirmou o recebimento"
	}
	return fmt.Sprintf("%s %s #%s", e.UserName, action, e.OrderID.Short())
}

func (e OrderStatusChanged) ShouldNotifyUser() bool {
	return true
}

// ShouldNotifyAdmins is true for the two terminal statuses.
func (e OrderStatusChanged) ShouldNotifyAdmins() bool {
	return e.NewStatus == order.Delivered || e.NewStatus == order.Cancelled
}

// OrderDelivered is raised when the customer (or staff) confirms delivery.
type OrderDelivered struct {
	OrderID         kernel.UUID
	UserID          kernel.UUID
	UserName        string
	TotalAmount     decimal.Decimal
	TotalFormatted  string
	DeliveredBy     kernel.UUID
	DeliveryAddress string
	OrderCreatedAt  time.Time
	DeliveredAt     time.Time
}

// NewOrderDelivered expects a delivered order.
func NewOrderDelivered(o *order.Order, owner *user.User, deliveredBy kernel.UUID) OrderDelivered {
	e := OrderDelivered{
		OrderID:         o.ID(),
		UserID:          o.UserID(),
		UserName:        owner.Name(),
		TotalAmount:     o.TotalAmount(),
		TotalFormatted:  o.TotalFormatted(),
		DeliveredBy:     deliveredBy,
		DeliveryAddress: o.DeliveryAddress(),
		OrderCreatedAt:  o.CreatedAt(),
		DeliveredAt:     o.UpdatedAt(),
	}
	if at := o.DeliveredAt(); at != nil {
		e.DeliveredAt = *at
	}
	return e
}

func (e OrderDelivered) EventType() string     { return TypeOrderDelivered }
func (e OrderDelivered) OccurredAt() time.Time { return e.DeliveredAt }

func (e OrderDelivered) NotificationTitle() string {
	return "Pedido Entregue! 🎉"
}

func (e OrderDelivered) NotificationMessage() string {
	return fmt.Sprintf("Pedido #%s foi entregue! 🎉 Obrigado pela preferência!", e.OrderID.Short())
}

// DeliveryTimeMinutes is the whole minutes between creation and delivery.
func (e OrderDelivered) DeliveryTimeMinutes() int {
	return int(e.DeliveredAt.Sub(e.OrderCreatedAt) / time.Minute)
}

func (e OrderDelivered) WasDeliveredOnTime() bool {
	return e.DeliveryTimeMinutes() <= int(OnTimeDeliveryLimit/time.Minute)
}

// AdminNotificationMessage reads e.g.
// "Maria confirmou entrega do pedido #1a2b3c4d (42 min) ✅ No prazo".
func (e OrderDelivered) AdminNotificationMessage() string {
	verdict := "⚠️ Atrasado"
	if e.WasDeliveredOnTime() {
		verdict = "✅ No prazo"
	}
	return fmt.Sprintf("%s confirmou entrega do pedido #%s (%d min) %s",
		e.UserName, e.OrderID.Short(), e.DeliveryTimeMinutes(), verdict)
}

func (e OrderDelivered) ShouldNotifyAdmins() bool {
	return true
}

// ShouldNotifyUser is false: the customer is the one who confirmed.
func (e OrderDelivered) ShouldNotifyUser() bool {
	return false
}

func summarize(items []order.Item) []ItemSummary {
	out := make([]ItemSummary, 0, len(items))
	for _, item := range items {
		out = append(out, ItemSummary{FoodName: item.FoodName(), Quantity: item.Quantity()})
	}
	return out
}
