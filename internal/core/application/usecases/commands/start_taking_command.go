package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartTakingCommandIsNotConstructed = errors.New(
	"StartTakingCommand must be created via NewStartTakingCommand constructor",
)

// StartTakingCommand asks to move an invoice from TO_TAKE to TAKING on behalf
// of actor, who becomes its taker.
//
// Example:
//
//	cmd, err := NewStartTakingCommand(invoiceID, "alice")
//	if err != nil {
//	    return err
//	}
//	inv, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrWorkloadExceeded) {
//	    // alice already holds two jobs
//	}
type StartTakingCommand struct {
	invoiceAction

	guard guard.ConstructorGuard
}

func NewStartTakingCommand(invoiceID kernel.UUID, actor string) (StartTakingCommand, error) {
	action, err := newInvoiceAction(invoiceID, actor)
	if err != nil {
		return StartTakingCommand{}, err
	}
	return StartTakingCommand{invoiceAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c StartTakingCommand) Validate() error {
	return c.guard.Validate(ErrStartTakingCommandIsNotConstructed)
}
