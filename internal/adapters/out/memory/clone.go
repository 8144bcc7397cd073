package memory

import (
	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
)

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(order.State{
		ID:                    o.ID(),
		UserID:                o.UserID(),
		Items:                 o.Items(),
		Status:                o.Status(),
		DeliveryAddress:       o.DeliveryAddress(),
		DeliveryNotes:         o.DeliveryNotes(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		DeliveredAt:           o.DeliveredAt(),
	})
}

func cloneUser(u *user.User) (*user.User, error) {
	return user.RestoreUser(u.ID(), u.Name(), u.Email(), u.Role(), u.IsActive(), u.CreatedAt(), u.UpdatedAt())
}

func cloneFood(f *food.Food) (*food.Food, error) {
	return food.RestoreFood(food.State{
		ID:                 f.ID(),
		Name:               f.Name(),
		Description:        f.Description(),
		Price:              f.Price(),
		ImageURL:           f.ImageURL(),
		Available:          f.IsAvailable(),
		PreparationMinutes: f.PreparationMinutes(),
		PreparationType:    f.PreparationType(),
		LastReadyAt:        f.LastReadyAt(),
		CreatedAt:          f.CreatedAt(),
		UpdatedAt:          f.UpdatedAt(),
	})
}

// cloneAll copies every row, stopping at the first failure.
func cloneAll[T any](rows []*T, clone func(*T) (*T, error)) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		c, err := clone(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
