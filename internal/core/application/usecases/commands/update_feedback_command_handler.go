package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
)

// UpdateFeedbackCommandHandler runs the confirmation algorithm on an
// aggregate and stores the outcome.
type UpdateFeedbackCommandHandler struct {
	uowFactory FeedbackUoWFactory
	clock      kernel.Clock
}

func NewUpdateFeedbackCommandHandler(uowFactory FeedbackUoWFactory, clock kernel.Clock) UpdateFeedbackCommandHandler {
	return UpdateFeedbackCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateFeedbackCommandHandler) Handle(
	ctx context.Context,
	command UpdateFeedbackCommand,
) (*feedback.Feedback, error) {
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
	fb, err := feedbacks.Get(ctx, command.FeedbackID())
	if err != nil {
		return nil, err
	}

	if err = fb.Confirm(command.Confirmation(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = feedbacks.Update(ctx, fb); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return fb, nil
}
