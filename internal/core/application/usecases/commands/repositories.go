// Package commands contains the write use cases of the ordering core.
// Every handler follows the same shape: validate the command, load and
// change aggregates inside a unit of work, commit, and only then publish
// the resulting domain event.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	FoodRepoFactory interface {
		FoodRepository() ports.FoodRepository
	}

	// OrderUoW serves commands that change an order on behalf of a user.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FoodUoW serves commands that change the menu on behalf of a user.
	FoodUoW interface {
		TxManager
		FoodRepoFactory
		UserRepoFactory
	}

	FoodUoWFactory interface {
		Create() FoodUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW spans orders, users and foods. Placing an order reads all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customer, err := uow.UserRepository().Get(ctx, userID)
	//   pizza, err := uow.FoodRepository().Get(ctx, foodID)
	//   err = uow.OrderRepository().Save(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		FoodRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
