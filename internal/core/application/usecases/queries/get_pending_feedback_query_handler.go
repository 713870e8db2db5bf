package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GetPendingFeedbackQueryHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewGetPendingFeedbackQueryHandler(db *gorm.DB, loc *time.Location) GetPendingFeedbackQueryHandler {
	return GetPendingFeedbackQueryHandler{db: db, loc: locationOrUTC(loc)}
}

// Handle returns open aggregates, most recent courier date first.
func (h GetPendingFeedbackQueryHandler) Handle(
	ctx context.Context,
	query GetPendingFeedbackQuery,
) ([]FeedbackView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + feedbackViewColumns + `
		FROM feedback
		WHERE issue_resolved_time IS NULL
		ORDER BY courier_date DESC, lower(customer_name), courier_name
	`).Rows()
	if err != nil {
		return nil, err
	}

	return scanFeedbackViews(rows, h.loc)
}
