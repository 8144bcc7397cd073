// Package http exposes the ordering use cases over a JSON API served by echo.
// The acting user is identified by the X-User-ID header; authentication is
// expected to happen in front of this service.
package http

import (
	"context"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the id of the user performing the request.
const ActorHeader = "X-User-ID"

// Handler is any use case taking a request value and returning a result.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// Handlers bundles the use cases served by the API.
type Handlers struct {
	CreateOrder          Handler[commands.CreateOrderCommand, commands.CreateOrderResult]
	UpdateOrderStatus    Handler[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResult]
	CancelOrder          Handler[commands.CancelOrderCommand, commands.CancelOrderResult]
	MarkOrderAsDelivered Handler[commands.MarkOrderAsDeliveredCommand, commands.MarkOrderAsDeliveredResult]
	GetOrderDetails      Handler[queries.GetOrderDetailsQuery, queries.OrderResponse]
	ListOrders           Handler[queries.ListOrdersQuery, queries.ListOrdersResponse]

	CreateFood             Handler[commands.CreateFoodCommand, kernel.UUID]
	MarkFoodAsReady        Handler[commands.MarkFoodAsReadyCommand, commands.MarkFoodAsReadyResult]
	ToggleFoodAvailability Handler[commands.ToggleFoodAvailabilityCommand, commands.ToggleFoodAvailabilityResult]
	ListFoods              Handler[queries.ListFoodsQuery, queries.ListFoodsResponse]
	ListFreshFoods         Handler[queries.ListFreshFoodsQuery, []queries.FoodResponse]

	CreateUser Handler[commands.CreateUserCommand, kernel.UUID]
	GetUser    Handler[queries.GetUserQuery, queries.UserResponse]
}

// Server coordinates between HTTP requests and the application use cases.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterRoutes mounts the API under /api/v1 and a liveness probe at /health.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/deliver", s.MarkOrderAsDelivered)

	api.GET("/foods", s.ListFoods)
	api.GET("/foods/fresh", s.ListFreshFoods)
	api.POST("/foods", s.CreateFood)
	api.POST("/foods/:id/ready", s.MarkFoodAsReady)
	api.PATCH("/foods/:id/availability", s.ToggleFoodAvailability)

	api.POST("/users", s.CreateUser)
	api.GET("/users/:id", s.GetUser)
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func actor(c echo.Context) (kernel.UUID, error) {
	raw := c.Request().Header.Get(ActorHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, ActorHeader+" header is required")
	}
	return kernel.UUIDFromString(raw)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}
