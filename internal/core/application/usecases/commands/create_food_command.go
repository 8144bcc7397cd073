package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCreateFoodCommandIsNotConstructed = errors.New(
	"CreateFoodCommand must be created via NewCreateFoodCommand constructor",
)

// CreateFoodCommand adds a dish to the menu. A zero preparation time means
// food.DefaultPreparationMinutes.
type CreateFoodCommand struct { //nolint:recvcheck //using for validation
	createdBy          kernel.UUID
	name               string
	description        string
	price              kernel.Money
	imageURL           string
	preparationMinutes int
	preparationType    food.PreparationType

	guard guard.ConstructorGuard
}

func NewCreateFoodCommand(
	createdBy kernel.UUID,
	name, description string,
	price kernel.Money,
	imageURL string,
	preparationMinutes int,
	preparationType string,
) (CreateFoodCommand, error) {
	prepType, typeErr := food.ParsePreparationType(preparationType)
	if err := errors.Join(
		createdBy.Validate(),
		price.Validate(),
		typeErr,
	); err != nil {
		return CreateFoodCommand{}, err
	}

	if preparationMinutes == 0 {
		preparationMinutes = food.DefaultPreparationMinutes
	}

	return CreateFoodCommand{
		createdBy:          createdBy,
		name:               strings.TrimSpace(name),
		description:        strings.TrimSpace(description),
		price:              price,
		imageURL:           strings.TrimSpace(imageURL),
		preparationMinutes: preparationMinutes,
		preparationType:    prepType,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c CreateFoodCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodCommandIsNotConstructed)
}

func (c CreateFoodCommand) CreatedBy() kernel.UUID                { return c.createdBy }
func (c CreateFoodCommand) Name() string                          { return c.name }
func (c CreateFoodCommand) Description() string                   { return c.description }
func (c CreateFoodCommand) Price() kernel.Money                   { return c.price }
func (c CreateFoodCommand) ImageURL() string                      { return c.imageURL }
func (c CreateFoodCommand) PreparationMinutes() int               { return c.preparationMinutes }
func (c CreateFoodCommand) PreparationType() food.PreparationType { return c.preparationType }
