package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// MarkPackedResult is the packed invoice and the feedback aggregate it was
// counted into.
type MarkPackedResult struct {
	Invoice  *invoice.Invoice
	Feedback *feedback.Feedback
}

// MarkPackedCommandHandler finishes an invoice and counts it into the
// (customer, courier, day) feedback aggregate. The status change and the
// aggregate upsert commit together.
type MarkPackedCommandHandler struct {
	uowFactory PackingUoWFactory
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewMarkPackedCommandHandler(
	uowFactory PackingUoWFactory,
	clock kernel.Clock,
	logger *zap.Logger,
) MarkPackedCommandHandler {
	return MarkPackedCommandHandler{uowFactory: uowFactory, clock: clock, logger: logger}
}

func (h MarkPackedCommandHandler) Handle(ctx context.Context, command MarkPackedCommand) (MarkPackedResult, error) {
	if err := command.Validate(); err != nil {
		return MarkPackedResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkPackedResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, inv, err := loadForTransition(ctx, uow, command.invoiceAction)
	if err != nil {
		return MarkPackedResult{}, err
	}

	now := h.clock.Now()
	from := inv.Status()
	if err = inv.MarkPacked(actor, now); err != nil {
		return MarkPackedResult{}, err
	}

	if err = uow.InvoiceRepository().Transition(ctx, inv, from); err != nil {
		return MarkPackedResult{}, err
	}

	fb, err := h.aggregate(ctx, uow, inv, command, now)
	if err != nil {
		return MarkPackedResult{}, err
	}

	if actor.IsAdmin() {
		if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
			ID:        kernel.NewUUID(),
			InvoiceID: inv.ID(),
			Action:    ports.AuditAdminMarkPacked,
			Actor:     actor.Username(),
			Details:   map[string]string{"packed_by": inv.PackedBy()},
			At:        now,
		}); err != nil {
			return MarkPackedResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkPackedResult{}, err
	}

	logTransition(h.logger, inv, actor, from)
	return MarkPackedResult{Invoice: inv, Feedback: fb}, nil
}

func (h MarkPackedCommandHandler) aggregate(
	ctx context.Context,
	uow PackingUoW,
	inv *invoice.Invoice,
	command MarkPackedCommand,
	now time.Time,
) (*feedback.Feedback, error) {
	key, err := feedback.NewKey(inv.Customer().ID, inv.Courier(), now)
	if err != nil {
		return nil, err
	}

	feedbacks := uow.FeedbackRepository()
	fb, err := feedbacks.AddInvoice(ctx, key, inv.Customer().Name)
	if err != nil {
		return nil, err
	}

	if command.NoOfBox() == nil && command.Weight() == nil {
		return fb, nil
	}

	if command.NoOfBox() != nil {
		if err = fb.SetBoxCount(*command.NoOfBox()); err != nil {
			return nil, err
		}
	}
	if command.Weight() != nil {
		if err = fb.SetWeight(command.Weight()); err != nil {
			return nil, err
		}
	}

	if err = feedbacks.Update(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}
