// Package queries contains the read use cases of the ordering core. Handlers
// read through repository ports outside of any transaction and return plain
// response structs, never aggregates.
package queries

import (
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID                    kernel.UUID
	UserID                kernel.UUID
	Status                string
	StatusDisplay         string
	StatusColor           string
	TotalAmount           decimal.Decimal
	TotalFormatted        string
	ItemCount             int
	Items                 []OrderItemResponse
	DeliveryAddress       string
	DeliveryNotes         string
	EstimatedDeliveryTime *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type OrderItemResponse struct {
	ID                 kernel.UUID
	FoodID             kernel.UUID
	FoodName           string
	Quantity           int
	UnitPrice          decimal.Decimal
	UnitPriceFormatted string
	Subtotal           decimal.Decimal
	Notes              string
}

// FoodResponse is the read model of a menu entry.
type FoodResponse struct {
	ID                     kernel.UUID
	Name                   string
	Description            string
	Price                  decimal.Decimal
	PriceFormatted         string
	ImageURL               string
	Available              bool
	PreparationMinutes     int
	PreparationType        string
	PreparationTypeDisplay string
	PreparationTypeEmoji   string
	LastReadyAt            *time.Time
	IsFresh                bool
}

type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	resp := OrderResponse{
		ID:                    o.ID(),
		UserID:                o.UserID(),
		Status:                o.Status().String(),
		StatusDisplay:         o.Status().DisplayName(),
		StatusColor:           o.Status().Color(),
		TotalAmount:           o.TotalAmount(),
		TotalFormatted:        o.TotalFormatted(),
		ItemCount:             o.ItemCount(),
		Items:                 make([]OrderItemResponse, 0, len(items)),
		DeliveryAddress:       o.DeliveryAddress(),
		DeliveryNotes:         o.DeliveryNotes(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		DeliveredAt:           o.DeliveredAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:                 item.ID(),
			FoodID:             item.FoodID(),
			FoodName:           item.FoodName(),
			Quantity:           item.Quantity(),
			UnitPrice:          item.UnitPrice().Amount(),
			UnitPriceFormatted: item.UnitPrice().Format(),
			Subtotal:           item.Subtotal().Amount(),
			Notes:              item.Notes(),
		})
	}
	return resp
}

func newFoodResponse(f *food.Food, now time.Time) FoodResponse {
	return FoodResponse{
		ID:                     f.ID(),
		Name:                   f.Name(),
		Description:            f.Description(),
		Price:                  f.Price().Amount(),
		PriceFormatted:         f.Price().Format(),
		ImageURL:               f.ImageURL(),
		Available:              f.IsAvailable(),
		PreparationMinutes:     f.PreparationMinutes(),
		PreparationType:        f.PreparationType().String(),
		PreparationTypeDisplay: f.PreparationType().DisplayName(),
		PreparationTypeEmoji:   f.PreparationType().Emoji(),
		LastReadyAt:            f.LastReadyAt(),
		IsFresh:                f.IsFresh(now),
	}
}

func newUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		Active:    u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
