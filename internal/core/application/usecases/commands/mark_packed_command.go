package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMarkPackedCommandIsNotConstructed = errors.New(
	"MarkPackedCommand must be created via NewMarkPackedCommand constructor",
)

// MarkPackedCommand completes verification: VERIFYING -> PACKED. The packer
// may record the box count and weight of the customer's courier aggregate in
// the same step; both are optional.
//
// Example:
//
//	boxes := 3
//	cmd, err := NewMarkPackedCommand(invoiceID, "bob", &boxes, nil)
type MarkPackedCommand struct { //nolint:recvcheck //using for validation
	invoiceAction
	noOfBox *int
	weight  *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewMarkPackedCommand(
	invoiceID kernel.UUID,
	actor string,
	noOfBox *int,
	weight *decimal.Decimal,
) (MarkPackedCommand, error) {
	action, actionErr := newInvoiceAction(invoiceID, actor)
	c := MarkPackedCommand{invoiceAction: action, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		actionErr,
		c.setNoOfBox(noOfBox),
		c.setWeight(weight),
	); err != nil {
		return MarkPackedCommand{}, err
	}
	return c, nil
}

func (c MarkPackedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackedCommandIsNotConstructed)
}

// NoOfBox returns the box count to record, or nil.
func (c MarkPackedCommand) NoOfBox() *int {
	return c.noOfBox
}

// Weight returns the weight to record, or nil.
func (c MarkPackedCommand) Weight() *decimal.Decimal {
	return c.weight
}

func (c *MarkPackedCommand) setNoOfBox(n *int) error {
	if n == nil {
		return nil
	}
	if *n < 0 {
		return errs.NewValueIsOutOfRangeError("no_of_box", *n, 0, "unbounded")
	}
	v := *n
	c.noOfBox = &v
	return nil
}

func (c *MarkPackedCommand) setWeight(w *decimal.Decimal) error {
	if w == nil {
		return nil
	}
	if w.IsNegative() {
		return errs.NewValueIsOutOfRangeError("weight", w.String(), 0, "unbounded")
	}
	v := *w
	c.weight = &v
	return nil
}
