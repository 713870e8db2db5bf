package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// MarkTakenCommandHandler lets the taker, or an admin on the taker's behalf,
// finish picking. Completing a job is never limited by the workload cap.
// Admin completions are written to the audit log.
type MarkTakenCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewMarkTakenCommandHandler(
	uowFactory WorkflowUoWFactory,
	clock kernel.Clock,
	logger *zap.Logger,
) MarkTakenCommandHandler {
	return MarkTakenCommandHandler{uowFactory: uowFactory, clock: clock, logger: logger}
}

func (h MarkTakenCommandHandler) Handle(ctx context.Context, command MarkTakenCommand) (*invoice.Invoice, error) {
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

	now := h.clock.Now()
	from := inv.Status()
	if err = inv.MarkTaken(actor, now); err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Transition(ctx, inv, from); err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
			ID:        kernel.NewUUID(),
			InvoiceID: inv.ID(),
			Action:    ports.AuditAdminMarkTaken,
			Actor:     actor.Username(),
			Details:   map[string]string{"taken_by": inv.TakenBy()},
			At:        now,
		}); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logTransition(h.logger, inv, actor, from)
	return inv, nil
}
