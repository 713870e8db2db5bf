package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"go.uber.org/zap"
)

// StartVerifyCommandHandler assigns an invoice to its verifier. The
// segregation-of-duty check runs inside the domain transition; the workload
// count is read in the same transaction as the compare-and-set.
type StartVerifyCommandHandler struct {
	uowFactory WorkflowUoWFactory
	limiter    services.WorkloadLimiter
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewStartVerifyCommandHandler(
	uowFactory WorkflowUoWFactory,
	clock kernel.Clock,
	logger *zap.Logger,
) StartVerifyCommandHandler {
	return StartVerifyCommandHandler{
		uowFactory: uowFactory,
		limiter:    services.NewWorkloadLimiter(),
		clock:      clock,
		logger:     logger,
	}
}

// Handle returns the invoice in VERIFYING, or WorkloadExceeded,
// SelfVerificationForbidden, InvalidTransition, NotAuthorized or Conflict.
func (h StartVerifyCommandHandler) Handle(ctx context.Context, command StartVerifyCommand) (*invoice.Invoice, error) {
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
	if err = h.limiter.StartVerify(inv, actor, active, h.clock.Now()); err != nil {
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
