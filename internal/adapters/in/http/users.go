package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateUser registers an account. It is the only route that does not
// need an acting user.
func (s *Server) CreateUser(c echo.Context) error {
	var body NewUser
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateUserCommand(body.Name, body.Email, body.Role)
	if err != nil {
		return err
	}

	id, err := s.h.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

func (s *Server) GetUser(c echo.Context) error {
	requestedBy, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(userID, requestedBy)
	if err != nil {
		return err
	}

	result, err := s.h.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUser(result))
}
