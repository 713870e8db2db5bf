package invoice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Changes is a partial update of invoice content. Nil fields are left alone.
// Number and Customer are protected (admin only); the rest are descriptive and
// may also be changed by the staff member who created the invoice.
type Changes struct {
	Number   *kernel.InvoiceNumber
	Customer *CustomerRef

	InvoiceDate  *time.Time
	RepName      *string
	Courier      *kernel.Courier
	NoOfProducts *int
	Value        *decimal.Decimal
	ClearValue   bool
}

// FieldChange records one edited field for the audit trail.
type FieldChange struct {
	Field     string `json:"field"`
	From      string `json:"from"`
	To        string `json:"to"`
	Protected bool   `json:"protected"`
}

// Edit applies c at any status. Edits never touch workflow fields (status,
// taker, verifier, timestamps), so they cannot be used to bypass a transition.
// Either every change applies or none does.
//
// Returns the fields whose value actually changed.
func (i *Invoice) Edit(actor kernel.Actor, c Changes) ([]FieldChange, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if (c.Number != nil || c.Customer != nil) && !actor.IsAdmin() {
		return nil, errs.NewNotAuthorizedError(actor.Username(), "edit invoice number or customer")
	}
	if c.hasDescriptive() && !actor.IsAdmin() && !actor.Is(i.createdBy) {
		return nil, errs.NewNotAuthorizedErrorWithCause(actor.Username(), "edit invoice",
			fmt.Errorf("invoice %s was created by %s", i.number, i.createdBy))
	}

	next := *i
	var errList []error
	if c.Number != nil {
		errList = append(errList, next.setNumber(*c.Number))
	}
	if c.Customer != nil {
		errList = append(errList, next.setCustomer(*c.Customer))
	}
	if c.InvoiceDate != nil {
		errList = append(errList, next.setInvoiceDate(*c.InvoiceDate))
	}
	if c.RepName != nil {
		next.repName = strings.TrimSpace(*c.RepName)
	}
	if c.Courier != nil {
		errList = append(errList, next.setCourier(*c.Courier))
	}
	if c.NoOfProducts != nil {
		errList = append(errList, next.setNoOfProducts(*c.NoOfProducts))
	}
	if c.ClearValue {
		next.value = nil
	} else if c.Value != nil {
		errList = append(errList, next.setValue(c.Value))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	changes := diff(i, &next)
	*i = next
	return changes, nil
}

func (c Changes) hasDescriptive() bool {
	return c.InvoiceDate != nil || c.RepName != nil || c.Courier != nil ||
		c.NoOfProducts != nil || c.Value != nil || c.ClearValue
}

func diff(before, after *Invoice) []FieldChange {
	var out []FieldChange
	add := func(field, from, to string, protected bool) {
		if from != to {
			out = append(out, FieldChange{Field: field, From: from, To: to, Protected: protected})
		}
	}

	add("invoice_number", before.number.String(), after.number.String(), true)
	add("customer_id", before.customer.ID.String(), after.customer.ID.String(), true)
	add("customer_name", before.customer.Name, after.customer.Name, true)
	add("invoice_date", before.invoiceDate.Format(time.DateOnly), after.invoiceDate.Format(time.DateOnly), false)
	add("rep_name", before.repName, after.repName, false)
	add("courier_name", before.courier.String(), after.courier.String(), false)
	add("no_of_products", strconv.Itoa(before.noOfProducts), strconv.Itoa(after.noOfProducts), false)
	add("invoice_value", decimalString(before.value), decimalString(after.value), false)
	return out
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
