package commands

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrEditInvoiceCommandIsNotConstructed = errors.New(
	"EditInvoiceCommand must be created via NewEditInvoiceCommand constructor",
)

// EditInvoiceParams is a partial edit. Nil fields are left unchanged;
// ClearValue removes the invoice value.
type EditInvoiceParams struct {
	Number       *string
	CustomerID   *kernel.UUID
	InvoiceDate  *time.Time
	RepName      *string
	Courier      *string
	NoOfProducts *int
	Value        *decimal.Decimal
	ClearValue   bool
}

// EditInvoiceCommand corrects invoice content at any status. The number and
// customer are admin-only corrections; the descriptive fields may also be
// edited by the staff member who billed the invoice.
type EditInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceAction
	number       *kernel.InvoiceNumber
	customerID   *kernel.UUID
	invoiceDate  *time.Time
	repName      *string
	courier      *kernel.Courier
	noOfProducts *int
	value        *decimal.Decimal
	clearValue   bool

	guard guard.ConstructorGuard
}

func NewEditInvoiceCommand(invoiceID kernel.UUID, actor string, p EditInvoiceParams) (EditInvoiceCommand, error) {
	action, actionErr := newInvoiceAction(invoiceID, actor)
	c := EditInvoiceCommand{
		invoiceAction: action,
		invoiceDate:   p.InvoiceDate,
		repName:       p.RepName,
		noOfProducts:  p.NoOfProducts,
		value:         p.Value,
		clearValue:    p.ClearValue,
		guard:         guard.NewConstructorGuard(),
	}

	var emptyErr error
	if p == (EditInvoiceParams{}) {
		emptyErr = errs.NewValueIsRequiredError("changes")
	}
	var valueErr error
	if p.ClearValue && p.Value != nil {
		valueErr = errs.NewValueIsInvalidErrorWithCause("invoice_value",
			errors.New("cannot set and clear the value at once"))
	}

	if err := errors.Join(
		actionErr,
		emptyErr,
		valueErr,
		c.setNumber(p.Number),
		c.setCustomerID(p.CustomerID),
		c.setCourier(p.Courier),
	); err != nil {
		return EditInvoiceCommand{}, err
	}
	return c, nil
}

func (c EditInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrEditInvoiceCommandIsNotConstructed)
}

func (c EditInvoiceCommand) Number() *kernel.InvoiceNumber { return c.number }
func (c EditInvoiceCommand) CustomerID() *kernel.UUID      { return c.customerID }
func (c EditInvoiceCommand) InvoiceDate() *time.Time       { return c.invoiceDate }
func (c EditInvoiceCommand) RepName() *string              { return c.repName }
func (c EditInvoiceCommand) Courier() *kernel.Courier      { return c.courier }
func (c EditInvoiceCommand) NoOfProducts() *int            { return c.noOfProducts }
func (c EditInvoiceCommand) Value() *decimal.Decimal       { return c.value }
func (c EditInvoiceCommand) ClearValue() bool              { return c.clearValue }

func (c *EditInvoiceCommand) setNumber(raw *string) error {
	if raw == nil {
		return nil
	}
	n, err := kernel.NewInvoiceNumber(*raw)
	if err != nil {
		return err
	}
	c.number = &n
	return nil
}

func (c *EditInvoiceCommand) setCustomerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}
	v := *id
	c.customerID = &v
	return nil
}

func (c *EditInvoiceCommand) setCourier(raw *string) error {
	if raw == nil {
		return nil
	}
	if strings.TrimSpace(*raw) == "" {
		return errs.NewValueIsRequiredError("courier_name")
	}
	courier, err := kernel.ParseCourier(*raw)
	if err != nil {
		return err
	}
	c.courier = &courier
	return nil
}
