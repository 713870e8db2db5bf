package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

// ConfirmCourierDispatchCommandHandler confirms a courier pickup all or
// nothing. The rows are locked for the duration of the transaction so a
// concurrent box-count edit cannot slip in between validation and commit.
// On IncompleteBoxCounts no row is written.
type ConfirmCourierDispatchCommandHandler struct {
	uowFactory FeedbackUoWFactory
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewConfirmCourierDispatchCommandHandler(
	uowFactory FeedbackUoWFactory,
	clock kernel.Clock,
	logger *zap.Logger,
) ConfirmCourierDispatchCommandHandler {
	return ConfirmCourierDispatchCommandHandler{uowFactory: uowFactory, clock: clock, logger: logger}
}

func (h ConfirmCourierDispatchCommandHandler) Handle(
	ctx context.Context,
	command ConfirmCourierDispatchCommand,
) ([]*feedback.Feedback, error) {
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

	feedbacks := uow.FeedbackRepository()
	rows, err := feedbacks.GetForUpdate(ctx, command.RowIDs())
	if err != nil {
		return nil, err
	}

	if err = feedback.ConfirmDispatch(rows, command.CourierDate(), h.clock.Now()); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err = feedbacks.Update(ctx, row); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("courier dispatch confirmed",
		zap.Time("courier_date", command.CourierDate()),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}
