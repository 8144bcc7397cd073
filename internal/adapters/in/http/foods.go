package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListFoods(c echo.Context) error {
	var (
		availableOnly bool
		limit, offset int
	)
	if err := echo.QueryParamsBinder(c).
		Bool("availableOnly", &availableOnly).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return err
	}

	query, err := queries.NewListFoodsQuery(availableOnly, limit, offset)
	if err != nil {
		return err
	}

	result, err := s.h.ListFoods.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, FoodPage{
		Foods:   toFoods(result.Foods),
		Total:   result.Total,
		HasMore: result.HasMore,
	})
}

func (s *Server) ListFreshFoods(c echo.Context) error {
	result, err := s.h.ListFreshFoods.Handle(c.Request().Context(), queries.NewListFreshFoodsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, FreshFoods{
		FreshFoods: toFoods(result),
		Total:      len(result),
	})
}

func (s *Server) CreateFood(c echo.Context) error {
	createdBy, err := actor(c)
	if err != nil {
		return err
	}

	var body NewFood
	if err = c.Bind(&body); err != nil {
		return err
	}

	price, err := kernel.NewMoneyFromString(body.Price, body.Currency)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateFoodCommand(
		createdBy,
		body.Name,
		body.Description,
		price,
		body.ImageURL,
		body.PreparationMinutes,
		body.PreparationType,
	)
	if err != nil {
		return err
	}

	id, err := s.h.CreateFood.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

func (s *Server) MarkFoodAsReady(c echo.Context) error {
	markedBy, err := actor(c)
	if err != nil {
		return err
	}
	foodID, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkFoodAsReadyCommand(foodID, markedBy)
	if err != nil {
		return err
	}

	result, err := s.h.MarkFoodAsReady.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, FoodReady{
		FoodID:      result.FoodID.String(),
		FoodName:    result.FoodName,
		LastReadyAt: result.LastReadyAt,
	})
}

func (s *Server) ToggleFoodAvailability(c echo.Context) error {
	changedBy, err := actor(c)
	if err != nil {
		return err
	}
	foodID, err := pathID(c)
	if err != nil {
		return err
	}

	var body AvailabilityChange
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewToggleFoodAvailabilityCommand(foodID, body.Available, changedBy, body.Reason)
	if err != nil {
		return err
	}

	result, err := s.h.ToggleFoodAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AvailabilityChanged{
		FoodID:    result.FoodID.String(),
		Available: result.Available,
		UpdatedAt: result.UpdatedAt,
	})
}
