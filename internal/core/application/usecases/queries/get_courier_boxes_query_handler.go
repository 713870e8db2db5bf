package queries

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierBoxesQueryHandler groups the day's packed ST and Professional
// invoices by courier and customer and attaches each group's box count.
type GetCourierBoxesQueryHandler struct {
	db         *gorm.DB
	aggregator services.CourierBoxAggregator
	loc        *time.Location
}

func NewGetCourierBoxesQueryHandler(db *gorm.DB, loc *time.Location) GetCourierBoxesQueryHandler {
	return GetCourierBoxesQueryHandler{
		db:         db,
		aggregator: services.NewCourierBoxAggregator(),
		loc:        locationOrUTC(loc),
	}
}

// Handle returns the rows ordered by courier, then customer name.
func (h GetCourierBoxesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBoxesQuery,
) ([]services.CourierBoxRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start, end := dayBounds(query.Day(), h.loc)
	dispatchable := []string{kernel.CourierST.String(), kernel.CourierProfessional.String()}

	packed, err := h.packedInvoices(ctx, start, end, dispatchable)
	if err != nil {
		return nil, err
	}

	aggregates, err := h.aggregates(ctx, start, dispatchable)
	if err != nil {
		return nil, err
	}

	return h.aggregator.Aggregate(packed, aggregates), nil
}

func (h GetCourierBoxesQueryHandler) packedInvoices(
	ctx context.Context,
	start, end time.Time,
	couriers []string,
) ([]services.PackedInvoice, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, invoice_number, customer_id, customer_name, courier_name, pack_completed_at
		FROM invoices
		WHERE status = 'PACKED'
		  AND pack_completed_at >= ? AND pack_completed_at < ?
		  AND courier_name IN ?
		ORDER BY invoice_number
	`, start, end, couriers).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packed := make([]services.PackedInvoice, 0)
	for rows.Next() {
		var (
			p              services.PackedInvoice
			id, customerID uuid.UUID
			courier        string
			packedAt       time.Time
		)
		if err = rows.Scan(&id, &p.Number, &customerID, &p.CustomerName, &courier, &packedAt); err != nil {
			return nil, err
		}
		if p.InvoiceID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if p.CustomerID, err = kernel.UUIDFrom(customerID); err != nil {
			return nil, err
		}
		if p.Courier, err = kernel.ParseCourier(courier); err != nil {
			return nil, err
		}
		p.PackCompletedAt = packedAt.In(h.loc)
		packed = append(packed, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return packed, nil
}

func (h GetCourierBoxesQueryHandler) aggregates(
	ctx context.Context,
	day time.Time,
	couriers []string,
) ([]*feedback.Feedback, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+feedbackViewColumns+`
		FROM feedback
		WHERE courier_date = ?::date AND courier_name IN ?
	`, pgdate.Param(day), couriers).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make([]*feedback.Feedback, 0)
	for rows.Next() {
		s, scanErr := scanFeedbackSnapshot(rows, h.loc)
		if scanErr != nil {
			return nil, scanErr
		}
		f, restoreErr := feedback.RestoreFeedback(s)
		if restoreErr != nil {
			return nil, restoreErr
		}
		aggregates = append(aggregates, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return aggregates, nil
}
