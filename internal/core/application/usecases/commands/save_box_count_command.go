package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSaveBoxCountCommandIsNotConstructed = errors.New(
	"SaveBoxCountCommand must be created via NewSaveBoxCountCommand constructor",
)

// SaveBoxCountCommand stores the box count of one courier aggregate row.
// Saving the same count twice is a no-op; zero clears a mistaken entry.
type SaveBoxCountCommand struct { //nolint:recvcheck //using for validation
	feedbackID kernel.UUID
	noOfBox    int

	guard guard.ConstructorGuard
}

func NewSaveBoxCountCommand(feedbackID kernel.UUID, noOfBox int) (SaveBoxCountCommand, error) {
	c := SaveBoxCountCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		c.setFeedbackID(feedbackID),
		c.setNoOfBox(noOfBox),
	); err != nil {
		return SaveBoxCountCommand{}, err
	}
	return c, nil
}

func (c SaveBoxCountCommand) Validate() error {
	return c.guard.Validate(ErrSaveBoxCountCommandIsNotConstructed)
}

func (c SaveBoxCountCommand) FeedbackID() kernel.UUID {
	return c.feedbackID
}

func (c SaveBoxCountCommand) NoOfBox() int {
	return c.noOfBox
}

func (c *SaveBoxCountCommand) setFeedbackID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("feedback_id", err)
	}
	c.feedbackID = id
	return nil
}

func (c *SaveBoxCountCommand) setNoOfBox(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("no_of_box", n, 0, "unbounded")
	}
	c.noOfBox = n
	return nil
}
