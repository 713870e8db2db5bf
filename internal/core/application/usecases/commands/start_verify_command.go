package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartVerifyCommandIsNotConstructed = errors.New(
	"StartVerifyCommand must be created via NewStartVerifyCommand constructor",
)

// StartVerifyCommand asks to move an invoice from TO_VERIFY to VERIFYING on
// behalf of actor, who becomes its verifier. The actor must not be the taker.
type StartVerifyCommand struct {
	invoiceAction

	guard guard.ConstructorGuard
}

func NewStartVerifyCommand(invoiceID kernel.UUID, actor string) (StartVerifyCommand, error) {
	action, err := newInvoiceAction(invoiceID, actor)
	if err != nil {
		return StartVerifyCommand{}, err
	}
	return StartVerifyCommand{invoiceAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c StartVerifyCommand) Validate() error {
	return c.guard.Validate(ErrStartVerifyCommandIsNotConstructed)
}
