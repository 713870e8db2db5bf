package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSaveCustomerCommandIsNotConstructed = errors.New(
		"SaveCustomerCommand must be created via NewCreateCustomerCommand or NewUpdateCustomerCommand",
	)
	ErrDeleteCustomerCommandIsNotConstructed = errors.New(
		"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
	)
)

// SaveCustomerCommand carries the full customer record for a create or an
// update. The default courier is parsed here so the handler only sees the
// fixed courier set.
type SaveCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	city       string
	repName    string
	courier    kernel.Courier

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand assigns a fresh id.
func NewCreateCustomerCommand(name, city, repName, courier string) (SaveCustomerCommand, error) {
	return newSaveCustomerCommand(kernel.NewUUID(), name, city, repName, courier)
}

func NewUpdateCustomerCommand(customerID kernel.UUID, name, city, repName, courier string) (SaveCustomerCommand, error) {
	return newSaveCustomerCommand(customerID, name, city, repName, courier)
}

func newSaveCustomerCommand(id kernel.UUID, name, city, repName, courier string) (SaveCustomerCommand, error) {
	c := SaveCustomerCommand{name: name, city: city, repName: repName, guard: guard.NewConstructorGuard()}

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("customer_name")
	}
	if err := errors.Join(
		c.setCustomerID(id),
		c.setCourier(courier),
		nameErr,
	); err != nil {
		return SaveCustomerCommand{}, err
	}
	return c, nil
}

func (c SaveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerCommandIsNotConstructed)
}

func (c SaveCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c SaveCustomerCommand) Name() string            { return c.name }
func (c SaveCustomerCommand) City() string            { return c.city }
func (c SaveCustomerCommand) RepName() string         { return c.repName }
func (c SaveCustomerCommand) Courier() kernel.Courier { return c.courier }

func (c *SaveCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = id
	return nil
}

func (c *SaveCustomerCommand) setCourier(raw string) error {
	courier, err := kernel.ParseCourier(raw)
	if err != nil {
		return err
	}
	c.courier = courier
	return nil
}

// DeleteCustomerCommand removes a customer. Invoices keep their copied name.
type DeleteCustomerCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(customerID kernel.UUID) (DeleteCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeleteCustomerCommand{}, errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	return DeleteCustomerCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}
