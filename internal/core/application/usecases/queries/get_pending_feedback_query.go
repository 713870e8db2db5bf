package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingFeedbackQueryIsNotConstructed = errors.New(
	"GetPendingFeedbackQuery must be created via NewGetPendingFeedbackQuery constructor",
)

// GetPendingFeedbackQuery lists aggregates whose stock receipt is not yet
// resolved.
type GetPendingFeedbackQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingFeedbackQuery() GetPendingFeedbackQuery {
	return GetPendingFeedbackQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingFeedbackQueryIsNotConstructed)
}
