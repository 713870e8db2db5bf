package commands

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// invoiceAction is the input shared by the workflow transitions: which
// invoice, and who is acting on it.
type invoiceAction struct {
	invoiceID kernel.UUID
	actor     string
}

func newInvoiceAction(invoiceID kernel.UUID, actor string) (invoiceAction, error) {
	a := invoiceAction{}
	if err := errors.Join(
		a.setInvoiceID(invoiceID),
		a.setActor(actor),
	); err != nil {
		return invoiceAction{}, err
	}
	return a, nil
}

// InvoiceID returns the invoice the action applies to.
func (a invoiceAction) InvoiceID() kernel.UUID {
	return a.invoiceID
}

// Actor returns the acting username.
func (a invoiceAction) Actor() string {
	return a.actor
}

func (a *invoiceAction) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("invoice_id", err)
	}
	a.invoiceID = id
	return nil
}

func (a *invoiceAction) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	a.actor = actor
	return nil
}

// loadForTransition resolves the acting staff member and the invoice inside
// the caller's transaction.
func loadForTransition(
	ctx context.Context,
	uow WorkflowUoW,
	action invoiceAction,
) (kernel.Actor, *invoice.Invoice, error) {
	actor, err := uow.StaffDirectory().Resolve(ctx, action.Actor())
	if err != nil {
		return kernel.Actor{}, nil, err
	}

	inv, err := uow.InvoiceRepository().Get(ctx, action.InvoiceID())
	if err != nil {
		return kernel.Actor{}, nil, err
	}

	return actor, inv, nil
}
