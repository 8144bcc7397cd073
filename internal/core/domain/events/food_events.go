package events

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// FoodReady is raised when the kitchen marks a fresh batch.
type FoodReady struct {
	FoodID          kernel.UUID
	FoodName        string
	FoodDescription string
	Price           decimal.Decimal
	PriceFormatted  string
	ImageURL        string
	PreparationType food.PreparationType
	MarkedBy        kernel.UUID
	MarkedByName    string
	At              time.Time
}

func NewFoodReady(f *food.Food, actor *user.User, at time.Time) FoodReady {
	return FoodReady{
		FoodID:          f.ID(),
		FoodName:        f.Name(),
		FoodDescription: f.Description(),
		Price:           f.Price().Amount(),
		PriceFormatted:  f.Price().Format(),
		ImageURL:        f.ImageURL(),
		PreparationType: f.PreparationType(),
		MarkedBy:        actor.ID(),
		MarkedByName:    actor.Name(),
		At:              at,
	}
}

func (e FoodReady) EventType() string     { return TypeFoodReady }
func (e FoodReady) OccurredAt() time.Time { return e.At }

func (e FoodReady) NotificationTitle() string {
	return "🔥 Fresquinho Saindo!"
}

func (e FoodReady) NotificationMessage() string {
	var phrase string
	switch e.PreparationType {
	case food.Oven:
		phrase = "🔥 acabou de sair do forno!"
	case food.Fried:
		phrase = "🍳 acabou de ser fritado!"
	case food.Grilled:
		phrase = "🔥 acabou de sair da grelha!"
	case food.Cooked:
		phrase = "🍲 acabou de ser cozido!"
	case food.Baked:
		phrase = "🥐 acabou de ser assado!"
	default:
		phrase = "está fresquinho!"
	}
	return fmt.Sprintf("%s %s Peça agora! 😋", e.FoodName, phrase)
}

func (e FoodReady) ShouldBroadcastToAll() bool {
	return true
}

// FoodAvailabilityChanged is raised when staff toggle a food on or off the menu.
type FoodAvailabilityChanged struct {
	FoodID          kernel.UUID
	FoodName        string
	FoodDescription string
	Price           decimal.Decimal
	PriceFormatted  string
	ImageURL        string
	Available       bool
	ChangedBy       kernel.UUID
	ChangedByName   string
	Reason          string
	At              time.Time
}

func NewFoodAvailabilityChanged(f *food.Food, actor *user.User, reason string, at time.Time) FoodAvailabilityChanged {
	return FoodAvailabilityChanged{
		FoodID:          f.ID(),
		FoodName:        f.Name(),
		FoodDescription: f.Description(),
		Price:           f.Price().Amount(),
		PriceFormatted:  f.Price().Format(),
		ImageURL:        f.ImageURL(),
		Available:       f.IsAvailable(),
		ChangedBy:       actor.ID(),
		ChangedByName:   actor.Name(),
		Reason:          reason,
		At:              at,
	}
}

func (e FoodAvailabilityChanged) EventType() string     { return TypeFoodAvailabilityChanged }
func (e FoodAvailabilityChanged) OccurredAt() time.Time { return e.At }

func (e FoodAvailabilityChanged) NotificationTitle() string {
	if e.Available {
		return "✅ Disponível Agora!"
	}
	return "⚠️ Temporariamente Indisponível"
}

func (e FoodAvailabilityChanged) NotificationMessage() string {
	if e.Available {
		return fmt.Sprintf("%s está disponível novamente! 🎉 Peça já!", e.FoodName)
	}
	return fmt.Sprintf("%s está temporariamente indisponível. 😔", e.FoodName)
}

// ShouldBroadcastToAll is true only when the food comes back.
func (e FoodAvailabilityChanged) ShouldBroadcastToAll() bool {
	return e.Available
}

func (e FoodAvailabilityChanged) ShouldNotifyAdmins() bool {
	return true
}

func (e FoodAvailabilityChanged) AdminNotificationMessage() string {
	state := "indisponível"
	if e.Available {
		state = "disponível"
	}
	msg := fmt.Sprintf("%s marcou \"%s\" como %s.", e.ChangedByName, e.FoodName, state)
	if e.WasManuallyChanged() {
		msg += " Motivo: " + e.Reason
	}
	return msg
}

// WasManuallyChanged reports whether staff gave a reason.
func (e FoodAvailabilityChanged) WasManuallyChanged() bool {
	return e.Reason != ""
}
