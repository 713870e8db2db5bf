package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"go.uber.org/zap"
)

// StartTakingCommandHandler assigns an invoice to its taker.
//
// The actor's active job count is read in the same transaction that writes
// the compare-and-set, so two concurrent starts by one person cannot both
// pass the cap: one of them fails with Conflict at the status check or at
// commit.
type StartTakingCommandHandler struct {
	uowFactory WorkflowUoWFactory
	limiter    services.WorkloadLimiter
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewStartTakingCommandHandler(
	uowFactory WorkflowUoWFactory,
	clock kernel.Clock,
	logger *zap.Logger,
) StartTakingCommandHandler {
	return StartTakingCommandHandler{
		uowFactory: uowFactory,
		limiter:    services.NewWorkloadLimiter(),
		clock:      clock,
		logger:     logger,
	}
}

// Handle returns the invoice in TAKING. On WorkloadExceeded, InvalidTransition,
// NotAuthorized or Conflict nothing is written.
func (h StartTakingCommandHandler) Handle(ctx context.Context, command StartTakingCommand) (*invoice.Invoice, error) {
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

	invoices := uow.InvoiceRepository()
	active, err := invoices.CountActiveJobs(ctx, actor.Username())
	if err != nil {
		return nil, err
	}

	from := inv.Status()
	if err = h.limiter.StartTaking(inv, actor, active, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = invoices.Transition(ctx, inv, from); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logTransition(h.logger, inv, actor, from)
	return inv, nil
}

func logTransition(logger *zap.Logger, inv *invoice.Invoice, actor kernel.Actor, from invoice.Status) {
	logger.Info("invoice status changed",
		zap.String("invoice_id", inv.ID().String()),
		zap.String("invoice_number", inv.Number().String()),
		zap.String("actor", actor.Username()),
		zap.Stringer("from", from),
		zap.Stringer("to", inv.Status()),
	)
}
