package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateFeedbackCommandIsNotConstructed = errors.New(
	"UpdateFeedbackCommand must be created via NewUpdateFeedbackCommand constructor",
)

// UpdateFeedbackCommand submits the feedback form for one aggregate. The
// stock answers arrive as "yes", "no" or empty.
type UpdateFeedbackCommand struct { //nolint:recvcheck //using for validation
	feedbackID   kernel.UUID
	confirmation feedback.Confirmation

	guard guard.ConstructorGuard
}

func NewUpdateFeedbackCommand(
	feedbackID kernel.UUID,
	noOfBox *int,
	weight *decimal.Decimal,
	stockReceived, stocksOK, followUp string,
) (UpdateFeedbackCommand, error) {
	c := UpdateFeedbackCommand{guard: guard.NewConstructorGuard()}

	received, receivedErr := feedback.ParseTriState(stockReceived)
	ok, okErr := feedback.ParseTriState(stocksOK)

	if err := errors.Join(
		c.setFeedbackID(feedbackID),
		receivedErr,
		okErr,
	); err != nil {
		return UpdateFeedbackCommand{}, err
	}

	c.confirmation = feedback.Confirmation{
		NoOfBox:       noOfBox,
		Weight:        weight,
		StockReceived: received,
		StocksOK:      ok,
		FollowUp:      followUp,
	}
	return c, nil
}

func (c UpdateFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFeedbackCommandIsNotConstructed)
}

func (c UpdateFeedbackCommand) FeedbackID() kernel.UUID {
	return c.feedbackID
}

func (c UpdateFeedbackCommand) Confirmation() feedback.Confirmation {
	return c.confirmation
}

func (c *UpdateFeedbackCommand) setFeedbackID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("feedback_id", err)
	}
	c.feedbackID = id
	return nil
}
