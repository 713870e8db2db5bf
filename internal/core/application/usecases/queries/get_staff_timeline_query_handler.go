package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GetStaffTimelineQueryHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewGetStaffTimelineQueryHandler(db *gorm.DB, loc *time.Location) GetStaffTimelineQueryHandler {
	return GetStaffTimelineQueryHandler{db: db, loc: locationOrUTC(loc)}
}

// Handle returns the invoices the user took or verified with any step inside
// the day, in the order the user started them.
func (h GetStaffTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetStaffTimelineQuery,
) ([]InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start, end := dayBounds(query.Day(), h.loc)
	user := query.Username()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+invoiceViewColumns+`
		FROM invoices
		WHERE (taken_by = @user AND (
		          (take_started_at >= @start AND take_started_at < @end)
		       OR (take_completed_at >= @start AND take_completed_at < @end)))
		   OR (packed_by = @user AND (
		          (verify_started_at >= @start AND verify_started_at < @end)
		       OR (pack_completed_at >= @start AND pack_completed_at < @end)))
		ORDER BY CASE WHEN taken_by = @user THEN take_started_at ELSE verify_started_at END,
		         invoice_number
	`, map[string]any{"user": user, "start": start, "end": end}).Rows()
	if err != nil {
		return nil, err
	}

	return scanInvoiceViews(rows, h.loc)
}
