package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrOverrideStartVerifyCommandIsNotConstructed = errors.New(
	"OverrideStartVerifyCommand must be created via NewOverrideStartVerifyCommand constructor",
)

// OverrideStartVerifyCommand is the admin's explicit, audited way to assign a
// verifier, including the taker when nobody else is available. The reason is
// stored in the audit log.
type OverrideStartVerifyCommand struct { //nolint:recvcheck //using for validation
	invoiceAction
	assignee string
	reason   string

	guard guard.ConstructorGuard
}

func NewOverrideStartVerifyCommand(
	invoiceID kernel.UUID,
	admin, assignee, reason string,
) (OverrideStartVerifyCommand, error) {
	action, actionErr := newInvoiceAction(invoiceID, admin)
	c := OverrideStartVerifyCommand{invoiceAction: action, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		actionErr,
		c.setAssignee(assignee),
		c.setReason(reason),
	); err != nil {
		return OverrideStartVerifyCommand{}, err
	}
	return c, nil
}

func (c OverrideStartVerifyCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStartVerifyCommandIsNotConstructed)
}

// Assignee returns the staff member who becomes the verifier.
func (c OverrideStartVerifyCommand) Assignee() string {
	return c.assignee
}

func (c OverrideStartVerifyCommand) Reason() string {
	return c.reason
}

func (c *OverrideStartVerifyCommand) setAssignee(assignee string) error {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return errs.NewValueIsRequiredError("assignee")
	}
	c.assignee = assignee
	return nil
}

func (c *OverrideStartVerifyCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
