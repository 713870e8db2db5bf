package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreateInvoiceCommandHandler bills a new invoice. Only billing staff and
// admins may create invoices. The customer's courier and rep are copied onto
// the invoice unless the command overrides them.
//
// After commit the day's issued-number cache is invalidated so the day-end
// missing-invoice check sees the new number. A cache failure is logged and
// does not fail the request; the cached entry expires on its own.
type CreateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	cache      ports.IssuedInvoiceCache
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewCreateInvoiceCommandHandler(
	uowFactory BillingUoWFactory,
	cache ports.IssuedInvoiceCache,
	clock kernel.Clock,
	logger *zap.Logger,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{uowFactory: uowFactory, cache: cache, clock: clock, logger: logger}
}

func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, command CreateInvoiceCommand) (*invoice.Invoice, error) {
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

	actor, err := uow.StaffDirectory().Resolve(ctx, command.CreatedBy())
	if err != nil {
		return nil, err
	}
	if actor.Role() == kernel.RolePacking {
		return nil, errs.NewNotAuthorizedError(actor.Username(), "create invoices")
	}

	cust, err := uow.CustomerRepository().Get(ctx, command.CustomerID())
	if err != nil {
		return nil, err
	}

	courier := cust.Courier()
	if command.Courier() != nil {
		courier = *command.Courier()
	}
	rep := cust.RepName()
	if command.RepName() != nil {
		rep = *command.RepName()
	}

	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.Draft{
		Number:       command.Number(),
		InvoiceDate:  command.InvoiceDate(),
		Customer:     invoice.CustomerRef{ID: cust.ID(), Name: cust.Name()},
		RepName:      rep,
		Courier:      courier,
		NoOfProducts: command.NoOfProducts(),
		Value:        command.Value(),
		CreatedBy:    actor.Username(),
	}, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	invalidateIssued(ctx, h.cache, h.logger, uow.WrittenInvoiceDays()...)
	h.logger.Info("invoice created",
		zap.String("invoice_id", inv.ID().String()),
		zap.String("invoice_number", inv.Number().String()),
		zap.String("created_by", actor.Username()),
	)
	return inv, nil
}
