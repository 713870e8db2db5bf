package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetStaffReportQueryHandler counts the jobs in progress right now plus the
// takes and packs completed during the day.
type GetStaffReportQueryHandler struct {
	db      *gorm.DB
	builder services.StaffReportBuilder
	loc     *time.Location
}

func NewGetStaffReportQueryHandler(db *gorm.DB, loc *time.Location) GetStaffReportQueryHandler {
	return GetStaffReportQueryHandler{
		db:      db,
		builder: services.NewStaffReportBuilder(),
		loc:     locationOrUTC(loc),
	}
}

func (h GetStaffReportQueryHandler) Handle(
	ctx context.Context,
	query GetStaffReportQuery,
) (services.StaffReport, error) {
	if err := query.Validate(); err != nil {
		return services.StaffReport{}, err
	}

	start, end := dayBounds(query.Day(), h.loc)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, coalesce(taken_by, ''), coalesce(packed_by, ''),
		       take_completed_at, pack_completed_at
		FROM invoices
		WHERE status IN (?, ?)
		   OR (take_completed_at >= ? AND take_completed_at < ?)
		   OR (pack_completed_at >= ? AND pack_completed_at < ?)
	`, invoice.Taking.String(), invoice.Verifying.String(), start, end, start, end).Rows()
	if err != nil {
		return services.StaffReport{}, err
	}
	defer rows.Close()

	activity := make([]services.InvoiceActivity, 0)
	for rows.Next() {
		var (
			a      services.InvoiceActivity
			status string
		)
		if err = rows.Scan(&status, &a.TakenBy, &a.PackedBy, &a.TakeCompletedAt, &a.PackCompletedAt); err != nil {
			return services.StaffReport{}, err
		}
		if a.Status, err = invoice.ParseStatus(status); err != nil {
			return services.StaffReport{}, err
		}
		a.TakeCompletedAt = within(a.TakeCompletedAt, start, end)
		a.PackCompletedAt = within(a.PackCompletedAt, start, end)
		activity = append(activity, a)
	}
	if err = rows.Err(); err != nil {
		return services.StaffReport{}, err
	}

	return h.builder.Build(activity), nil
}

// within drops t when it falls outside [start, end).
func within(t *time.Time, start, end time.Time) *time.Time {
	if t == nil || t.Before(start) || !t.Before(end) {
		return nil
	}
	return t
}
