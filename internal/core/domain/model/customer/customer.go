// Package customer holds the Customer entity. Invoices copy the customer's
// name, rep and default courier at billing time, so edits here never rewrite
// existing invoices.
package customer

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a pharmacy or distributor that invoices are billed to.
// Names are unique ignoring case and surrounding whitespace; the repository
// enforces that on the normalized form returned by NormalizedName.
type Customer struct {
	id            kernel.UUID
	name          string
	city          string
	repName       string
	courier       kernel.Courier
	isConstructed bool
}

func NewCustomer(id kernel.UUID, name, city, repName string, courier kernel.Courier) (*Customer, error) {
	c := &Customer{isConstructed: true}
	if err := errors.Join(c.setID(id), c.apply(name, city, repName, courier)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer rebuilds a stored customer.
func RestoreCustomer(id kernel.UUID, name, city, repName string, courier kernel.Courier) (*Customer, error) {
	return NewCustomer(id, name, city, repName, courier)
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Update replaces every editable field; nothing changes on error.
func (c *Customer) Update(name, city, repName string, courier kernel.Courier) error {
	next := *c
	if err := next.apply(name, city, repName, courier); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) Name() string            { return c.name }
func (c *Customer) City() string            { return c.city }
func (c *Customer) RepName() string         { return c.repName }
func (c *Customer) Courier() kernel.Courier { return c.courier }

// NormalizedName is the key used for uniqueness and same-customer matching.
func (c *Customer) NormalizedName() string {
	return NormalizeName(c.name)
}

// NormalizeName lower-cases and collapses whitespace.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) apply(name, city, repName string, courier kernel.Courier) error {
	n := strings.Join(strings.Fields(name), " ")
	var nameErr error
	if n == "" {
		nameErr = errs.NewValueIsRequiredError("customer_name")
	}
	if err := errors.Join(nameErr, courier.Validate()); err != nil {
		return err
	}
	c.name = n
	c.city = strings.TrimSpace(city)
	c.repName = strings.TrimSpace(repName)
	c.courier = courier
	return nil
}
