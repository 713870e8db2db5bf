package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkTakenCommandIsNotConstructed = errors.New(
	"MarkTakenCommand must be created via NewMarkTakenCommand constructor",
)

// MarkTakenCommand completes the picking phase: TAKING -> TO_VERIFY.
type MarkTakenCommand struct {
	invoiceAction

	guard guard.ConstructorGuard
}

func NewMarkTakenCommand(invoiceID kernel.UUID, actor string) (MarkTakenCommand, error) {
	action, err := newInvoiceAction(invoiceID, actor)
	if err != nil {
		return MarkTakenCommand{}, err
	}
	return MarkTakenCommand{invoiceAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkTakenCommand) Validate() error {
	return c.guard.Validate(ErrMarkTakenCommandIsNotConstructed)
}
