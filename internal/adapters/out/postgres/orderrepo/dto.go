// Package orderrepo persists order aggregates in the "orders" and
// "order_items" tables and maps them to and from the domain model.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of "orders". The total is stored for reporting only;
// the aggregate recomputes it from its items.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status                int             `gorm:"type:smallint;not null;index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency              string          `gorm:"type:char(3);not null"`
	DeliveryAddress       string          `gorm:"type:varchar(500);not null"`
	DeliveryNotes         string          `gorm:"type:text"`
	EstimatedDeliveryTime *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time       `gorm:"not null;index"`
	UpdatedAt             time.Time       `gorm:"not null"`
	Items                 []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one row of "order_items". Food name and unit price are the
// snapshot taken when the order was placed.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	FoodID    uuid.UUID       `gorm:"type:uuid;not null"`
	FoodName  string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency  string          `gorm:"type:char(3);not null"`
	Notes     string          `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := o.Items()
	dto := OrderDTO{
		ID:                    orderID,
		UserID:                o.UserID().Bytes(),
		Status:                int(o.Status()),
		TotalAmount:           o.TotalAmount(),
		Currency:              o.Currency(),
		DeliveryAddress:       o.DeliveryAddress(),
		DeliveryNotes:         o.DeliveryNotes(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		DeliveredAt:           o.DeliveredAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		Items:                 make([]OrderItemDTO, 0, len(items)),
	}

	for i, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			FoodID:    item.FoodID().Bytes(),
			FoodName:  item.FoodName(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Currency:  item.UnitPrice().Currency(),
			Notes:     item.Notes(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:                    id,
		UserID:                userID,
		Items:                 items,
		Status:                order.Status(dto.Status),
		DeliveryAddress:       dto.DeliveryAddress,
		DeliveryNotes:         dto.DeliveryNotes,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		DeliveredAt:           dto.DeliveredAt,
	})
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, foodID, dto.FoodName, dto.Quantity, price, dto.Notes)
}
