package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// OverrideStartVerifyCommandHandler runs the admin override. The workload cap
// is counted against the assignee, and the audit event is written in the same
// transaction as the status change.
type OverrideStartVerifyCommandHandler struct {
	uowFactory WorkflowUoWFactory
	limiter    services.WorkloadLimiter
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewOverrideStartVerifyCommandHandler(
	uowFactory WorkflowUoWFactory,
	clock kernel.Clock,
	logger *zap.Logger,
) OverrideStartVerifyCommandHandler {
	return OverrideStartVerifyCommandHandler{
		uowFactory: uowFactory,
		limiter:    services.NewWorkloadLimiter(),
		clock:      clock,
		logger:     logger,
	}
}

func (h OverrideStartVerifyCommandHandler) Handle(
	ctx context.Context,
	command OverrideStartVerifyCommand,
) (*invoice.Invoice, error) {
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

	admin, inv, err := loadForTransition(ctx, uow, command.invoiceAction)
	if err != nil {
		return nil, err
	}

	assignee, err := uow.StaffDirectory().Resolve(ctx, command.Assignee())
	if err != nil {
		return nil, err
	}

	invoices := uow.InvoiceRepository()
	active, err := invoices.CountActiveJobs(ctx, assignee.Username())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	from := inv.Status()
	if err = h.limiter.OverrideStartVerify(inv, admin, assignee, active, now); err != nil {
		return nil, err
	}

	if err = invoices.Transition(ctx, inv, from); err != nil {
		return nil, err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
		ID:        kernel.NewUUID(),
		InvoiceID: inv.ID(),
		Action:    ports.AuditOverrideStartVerify,
		Actor:     admin.Username(),
		Details: map[string]any{
			"assignee":          assignee.Username(),
			"taken_by":          inv.TakenBy(),
			"self_verification": inv.VerifyOverridden(),
			"reason":            command.Reason(),
		},
		At: now,
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Warn("verification override applied",
		zap.String("invoice_id", inv.ID().String()),
		zap.String("admin", admin.Username()),
		zap.String("assignee", assignee.Username()),
		zap.Bool("self_verification", inv.VerifyOverridden()),
	)
	return inv, nil
}
