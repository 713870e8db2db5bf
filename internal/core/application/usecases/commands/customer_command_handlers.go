package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler adds a customer. A name that matches an
// existing customer ignoring case is rejected by the repository.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, command SaveCustomerCommand) (*customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(
		command.CustomerID(), command.Name(), command.City(), command.RepName(), command.Courier())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// UpdateCustomerCommandHandler replaces a customer's fields. Existing
// invoices are not rewritten.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, command SaveCustomerCommand) (*customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.CustomerRepository()
	c, err := customers.Get(ctx, command.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(command.Name(), command.City(), command.RepName(), command.Courier()); err != nil {
		return nil, err
	}

	if err = customers.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, command DeleteCustomerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CustomerRepository().Delete(ctx, command.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
