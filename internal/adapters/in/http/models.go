package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type NewOrderItem struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type NewOrder struct {
	Items           []NewOrderItem `json:"items"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryNotes   string         `json:"deliveryNotes,omitempty"`
}

type CreatedOrder struct {
	ID                    string          `json:"id"`
	Status                string          `json:"status"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	TotalFormatted        string          `json:"totalFormatted"`
	ItemCount             int             `json:"itemCount"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time       `json:"createdAt"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type StatusChanged struct {
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Cancellation struct {
	Reason string `json:"reason,omitempty"`
}

type Delivery struct {
	OrderID             string    `json:"orderId"`
	DeliveredAt         time.Time `json:"deliveredAt"`
	DeliveryTimeMinutes int       `json:"deliveryTimeMinutes"`
}

type OrderItem struct {
	ID                 string          `json:"id"`
	FoodID             string          `json:"foodId"`
	FoodName           string          `json:"foodName"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	UnitPriceFormatted string          `json:"unitPriceFormatted"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Notes              string          `json:"notes,omitempty"`
}

type Order struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId"`
	Status                string          `json:"status"`
	StatusDisplay         string          `json:"statusDisplay"`
	StatusColor           string          `json:"statusColor"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	TotalFormatted        string          `json:"totalFormatted"`
	ItemCount             int             `json:"itemCount"`
	Items                 []OrderItem     `json:"items"`
	DeliveryAddress       string          `json:"deliveryAddress"`
	DeliveryNotes         *string         `json:"deliveryNotes"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime"`
	DeliveredAt           *time.Time      `json:"deliveredAt"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

type OrderPage struct {
	Orders  []Order `json:"orders"`
	Total   int     `json:"total"`
	HasMore bool    `json:"hasMore"`
}

type NewFood struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	Currency           string `json:"currency,omitempty"`
	ImageURL           string `json:"imageUrl,omitempty"`
	PreparationMinutes int    `json:"preparationTimeMinutes,omitempty"`
	PreparationType    string `json:"preparationType"`
}

type AvailabilityChange struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type FoodReady struct {
	FoodID      string    `json:"foodId"`
	FoodName    string    `json:"foodName"`
	LastReadyAt time.Time `json:"lastReadyAt"`
}

type AvailabilityChanged struct {
	FoodID    string    `json:"foodId"`
	Available bool      `json:"available"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Food struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	Price                  decimal.Decimal `json:"price"`
	PriceFormatted         string          `json:"priceFormatted"`
	ImageURL               *string         `json:"imageUrl"`
	Available              bool            `json:"available"`
	PreparationMinutes     int             `json:"preparationTimeMinutes"`
	PreparationType        string          `json:"preparationType"`
	PreparationTypeDisplay string          `json:"preparationTypeDisplay"`
	PreparationTypeEmoji   string          `json:"preparationTypeEmoji"`
	LastReadyAt            *time.Time      `json:"lastReadyAt"`
	IsFresh                bool            `json:"isFresh"`
}

type FoodPage struct {
	Foods   []Food `json:"foods"`
	Total   int    `json:"total"`
	HasMore bool   `json:"hasMore"`
}

type FreshFoods struct {
	FreshFoods []Food `json:"freshFoods"`
	Total      int    `json:"total"`
}

type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Created struct {
	ID string `json:"id"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toOrder(o queries.OrderResponse) Order {
	out := Order{
		ID:                    o.ID.String(),
		UserID:                o.UserID.String(),
		Status:                o.Status,
		StatusDisplay:         o.StatusDisplay,
		StatusColor:           o.StatusColor,
		TotalAmount:           o.TotalAmount,
		TotalFormatted:        o.TotalFormatted,
		ItemCount:             o.ItemCount,
		Items:                 make([]OrderItem, 0, len(o.Items)),
		DeliveryAddress:       o.DeliveryAddress,
		DeliveryNotes:         optional(o.DeliveryNotes),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveredAt:           o.DeliveredAt,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, OrderItem{
			ID:                 item.ID.String(),
			FoodID:             item.FoodID.String(),
			FoodName:           item.FoodName,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			UnitPriceFormatted: item.UnitPriceFormatted,
			Subtotal:           item.Subtotal,
			Notes:              item.Notes,
		})
	}
	return out
}

func toFood(f queries.FoodResponse) Food {
	return Food{
		ID:                     f.ID.String(),
		Name:                   f.Name,
		Description:            f.Description,
		Price:                  f.Price,
		PriceFormatted:         f.PriceFormatted,
		ImageURL:               optional(f.ImageURL),
		Available:              f.Available,
		PreparationMinutes:     f.PreparationMinutes,
		PreparationType:        f.PreparationType,
		PreparationTypeDisplay: f.PreparationTypeDisplay,
		PreparationTypeEmoji:   f.PreparationTypeEmoji,
		LastReadyAt:            f.LastReadyAt,
		IsFresh:                f.IsFresh,
	}
}

func toFoods(foods []queries.FoodResponse) []Food {
	out := make([]Food, 0, len(foods))
	for _, f := range foods {
		out = append(out, toFood(f))
	}
	return out
}

func toUser(u queries.UserResponse) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
