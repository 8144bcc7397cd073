package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// NotificationType groups notifications so clients can route and style them.
type NotificationType string

const (
	NotificationOrderStatus      NotificationType = "order_status"
	NotificationNewOrder         NotificationType = "new_order"
	NotificationFreshFood        NotificationType = "fresh_food"
	NotificationFoodAvailability NotificationType = "food_availability"
	NotificationGeneral          NotificationType = "general"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is one message with its audience. Send delivers it to every
// audience that is set; the helper methods of NotificationService set exactly one.
type Notification struct {
	Title    string
	Message  string
	Type     NotificationType
	Priority NotificationPriority
	Data     map[string]any

	UserIDs   []kernel.UUID
	ToAdmins  bool
	Broadcast bool
}

// NotificationService delivers notifications to users. Delivery is best effort;
// callers decide whether a failure matters.
type NotificationService interface {
	Send(ctx context.Context, n Notification) error
	SendToUser(ctx context.Context, userID kernel.UUID, n Notification) error
	SendToAdmins(ctx context.Context, n Notification) error
	Broadcast(ctx context.Context, n Notification) error
}
