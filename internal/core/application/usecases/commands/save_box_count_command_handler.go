package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/feedback"
)

// SaveBoxCountCommandHandler persists one row's box count independently of
// the other rows of the courier list.
type SaveBoxCountCommandHandler struct {
	uowFactory FeedbackUoWFactory
}

func NewSaveBoxCountCommandHandler(uowFactory FeedbackUoWFactory) SaveBoxCountCommandHandler {
	return SaveBoxCountCommandHandler{uowFactory: uowFactory}
}

func (h SaveBoxCountCommandHandler) Handle(ctx context.Context, command SaveBoxCountCommand) (*feedback.Feedback, error) {
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

	if current := fb.NoOfBox(); current != nil && *current == command.NoOfBox() {
		return fb, nil
	}

	if err = fb.SetBoxCount(command.NoOfBox()); err != nil {
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
