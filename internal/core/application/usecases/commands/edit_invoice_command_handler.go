package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// EditInvoiceCommandHandler applies a content correction and records every
// changed field in the audit log. Workflow fields are never touched, and an
// edit that changes nothing writes nothing.
//
// Changing the courier or customer of a packed invoice does not move it
// between feedback aggregates; the aggregate keeps the count it was given at
// packing time.
type EditInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	cache      ports.IssuedInvoiceCache
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewEditInvoiceCommandHandler(
	uowFactory BillingUoWFactory,
	cache ports.IssuedInvoiceCache,
	clock kernel.Clock,
	logger *zap.Logger,
) EditInvoiceCommandHandler {
	return EditInvoiceCommandHandler{uowFactory: uowFactory, cache: cache, clock: clock, logger: logger}
}

func (h EditInvoiceCommandHandler) Handle(ctx context.Context, command EditInvoiceCommand) (*invoice.Invoice, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, inv, err := loadForTransition(ctx, uow, command.invoiceAction)
	if err != nil {
		return nil, err
	}

	changes := invoice.Changes{
		Number:       command.Number(),
		InvoiceDate:  command.InvoiceDate(),
		RepName:      command.RepName(),
		Courier:      command.Courier(),
		NoOfProducts: command.NoOfProducts(),
		Value:        command.Value(),
		ClearValue:   command.ClearValue(),
	}
	if command.CustomerID() != nil {
		cust, err := uow.CustomerRepository().Get(ctx, *command.CustomerID())
		if err != nil {
			return nil, err
		}
		changes.Customer = &invoice.CustomerRef{ID: cust.ID(), Name: cust.Name()}
	}

	previousDate := inv.InvoiceDate()
	changed, err := inv.Edit(actor, changes)
	if err != nil {
		return nil, err
	}
	if len(changed) == 0 {
		return inv, nil
	}

	if err = uow.InvoiceRepository().UpdateContent(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
		ID:        kernel.NewUUID(),
		InvoiceID: inv.ID(),
		Action:    ports.AuditEditInvoice,
		Actor:     actor.Username(),
		Details:   changed,
		At:        h.clock.Now(),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if touchesIssuedNumbers(changed) {
		invalidateIssued(ctx, h.cache, h.logger, append(uow.WrittenInvoiceDays(), previousDate)...)
	}
	h.logger.Info("invoice edited",
		zap.String("invoice_id", inv.ID().String()),
		zap.String("actor", actor.Username()),
		zap.Int("fields", len(changed)),
	)
	return inv, nil
}

func touchesIssuedNumbers(changed []invoice.FieldChange) bool {
	for _, c := range changed {
		if c.Field == "invoice_number" || c.Field == "invoice_date" {
			return true
		}
	}
	return false
}
