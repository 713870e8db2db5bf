package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func (s *Server) SearchCustomers(ctx echo.Context, params servers.SearchCustomersParams) error {
	var prefix string
	var limit int
	if params.Q != nil {
		prefix = *params.Q
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	views, err := s.h.SearchCustomers.Handle(ctx.Request().Context(), queries.NewSearchCustomersQuery(prefix, limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	out := make([]servers.Customer, 0, len(views))
	for _, v := range views {
		out = append(out, customerViewOf(v))
	}
	return ctx.JSON(http.StatusOK, out)
}

func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, deref(body.City), deref(body.RepName), body.CourierName)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, customerOf(c))
}

func (s *Server) UpdateCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	var body servers.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	id, err := kernelID("customer_id", customerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateCustomerCommand(id, body.Name, deref(body.City), deref(body.RepName), body.CourierName)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, customerOf(c))
}

func (s *Server) DeleteCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	id, err := kernelID("customer_id", customerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
