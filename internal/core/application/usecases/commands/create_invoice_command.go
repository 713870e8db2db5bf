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

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceParams is the raw billing input. Courier and RepName are
// optional; when empty the customer's defaults are copied onto the invoice.
type CreateInvoiceParams struct {
	Number       string
	InvoiceDate  time.Time
	CustomerID   kernel.UUID
	Courier      string
	RepName      string
	NoOfProducts int
	Value        *decimal.Decimal
	CreatedBy    string
}

// CreateInvoiceCommand registers a billed invoice in TO_TAKE.
//
// Example:
//
//	cmd, err := NewCreateInvoiceCommand(CreateInvoiceParams{
//	    Number:       "SA000123",
//	    InvoiceDate:  today,
//	    CustomerID:   customerID,
//	    NoOfProducts: 12,
//	    CreatedBy:    "meena",
//	})
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	number       kernel.InvoiceNumber
	invoiceDate  time.Time
	customerID   kernel.UUID
	courier      *kernel.Courier
	repName      *string
	noOfProducts int
	value        *decimal.Decimal
	createdBy    string

	guard guard.ConstructorGuard
}

func NewCreateInvoiceCommand(p CreateInvoiceParams) (CreateInvoiceCommand, error) {
	c := CreateInvoiceCommand{
		invoiceDate:  p.InvoiceDate,
		noOfProducts: p.NoOfProducts,
		value:        p.Value,
		guard:        guard.NewConstructorGuard(),
	}

	var dateErr error
	if p.InvoiceDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("invoice_date")
	}
	var qtyErr error
	if p.NoOfProducts <= 0 {
		qtyErr = errs.NewValueIsOutOfRangeError("no_of_products", p.NoOfProducts, 1, "unbounded")
	}

	if err := errors.Join(
		c.setNumber(p.Number),
		c.setCustomerID(p.CustomerID),
		c.setCourier(p.Courier),
		c.setCreatedBy(p.CreatedBy),
		dateErr,
		qtyErr,
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	if rep := strings.TrimSpace(p.RepName); rep != "" {
		c.repName = &rep
	}
	return c, nil
}

func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

func (c CreateInvoiceCommand) Number() kernel.InvoiceNumber { return c.number }
func (c CreateInvoiceCommand) InvoiceDate() time.Time       { return c.invoiceDate }
func (c CreateInvoiceCommand) CustomerID() kernel.UUID      { return c.customerID }
func (c CreateInvoiceCommand) NoOfProducts() int            { return c.noOfProducts }
func (c CreateInvoiceCommand) Value() *decimal.Decimal      { return c.value }
func (c CreateInvoiceCommand) CreatedBy() string            { return c.createdBy }

// Courier returns the explicit courier, or nil to use the customer's default.
func (c CreateInvoiceCommand) Courier() *kernel.Courier {
	return c.courier
}

// RepName returns the explicit rep, or nil to use the customer's rep.
func (c CreateInvoiceCommand) RepName() *string {
	return c.repName
}

func (c *CreateInvoiceCommand) setNumber(raw string) error {
	n, err := kernel.NewInvoiceNumber(raw)
	if err != nil {
		return err
	}
	c.number = n
	return nil
}

func (c *CreateInvoiceCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateInvoiceCommand) setCourier(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	courier, err := kernel.ParseCourier(raw)
	if err != nil {
		return err
	}
	c.courier = &courier
	return nil
}

func (c *CreateInvoiceCommand) setCreatedBy(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("created_by")
	}
	c.createdBy = username
	return nil
}
