package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
)

// FeedbackRepository persists feedback aggregates.
type FeedbackRepository interface {
	// AddInvoice counts one packed invoice into the aggregate for key, creating
	// the aggregate if it does not exist. Find-or-create and the increment are
	// a single atomic statement, so concurrent packers never lose a count.
	AddInvoice(ctx context.Context, key feedback.Key, customerName string) (*feedback.Feedback, error)

	// Update writes the mutable fields of an existing aggregate.
	Update(ctx context.Context, aggregate *feedback.Feedback) error

	// Get retrieves one aggregate.
	Get(ctx context.Context, id kernel.UUID) (*feedback.Feedback, error)

	// GetForUpdate retrieves the aggregates with the given ids and locks the
	// rows until the transaction ends. A missing id is an ObjectNotFound error.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*feedback.Feedback, error)

	// ListByDate returns every aggregate with courier_date = day.
	ListByDate(ctx context.Context, day time.Time) ([]*feedback.Feedback, error)
}
