// Package foodrepo persists the menu in the "foods" table.
package foodrepo

import (
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FoodDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Description        string          `gorm:"type:text"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency           string          `gorm:"type:char(3);not null"`
	ImageURL           string          `gorm:"type:varchar(1024)"`
	Available          bool            `gorm:"not null;index"`
	PreparationMinutes int             `gorm:"not null"`
	PreparationType    string          `gorm:"type:varchar(16);not null"`
	LastReadyAt        *time.Time
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (FoodDTO) TableName() string {
	return "foods"
}

func fromDomain(f *food.Food) FoodDTO {
	return FoodDTO{
		ID:                 f.ID().Bytes(),
		Name:               f.Name(),
		Description:        f.Description(),
		Price:              f.Price().Amount(),
		Currency:           f.Price().Currency(),
		ImageURL:           f.ImageURL(),
		Available:          f.IsAvailable(),
		PreparationMinutes: f.PreparationMinutes(),
		PreparationType:    f.PreparationType().String(),
		LastReadyAt:        f.LastReadyAt(),
		CreatedAt:          f.CreatedAt(),
		UpdatedAt:          f.UpdatedAt(),
	}
}

func toDomain(dto FoodDTO) (*food.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price, dto.Currency)
	if err != nil {
		return nil, err
	}

	prep, err := food.ParsePreparationType(dto.PreparationType)
	if err != nil {
		return nil, err
	}

	return food.RestoreFood(food.State{
		ID:                 id,
		Name:               dto.Name,
		Description:        dto.Description,
		Price:              price,
		ImageURL:           dto.ImageURL,
		Available:          dto.Available,
		PreparationMinutes: dto.PreparationMinutes,
		PreparationType:    prep,
		LastReadyAt:        dto.LastReadyAt,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
