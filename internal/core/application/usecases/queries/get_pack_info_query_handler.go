package queries

import (
	"context"
	"slices"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackInfoQueryHandler uses the clock's day for invoices not yet packed
// and the pack day for packed ones.
type GetPackInfoQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
	loc   *time.Location
}

func NewGetPackInfoQueryHandler(db *gorm.DB, clock kernel.Clock, loc *time.Location) GetPackInfoQueryHandler {
	return GetPackInfoQueryHandler{db: db, clock: clock, loc: locationOrUTC(loc)}
}

func (h GetPackInfoQueryHandler) Handle(
	ctx context.Context,
	query GetPackInfoQuery,
) (GetPackInfoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackInfoQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+invoiceViewColumns+`
		FROM invoices
		WHERE id = ?
	`, query.InvoiceID().Raw()).Rows()
	if err != nil {
		return GetPackInfoQueryResponse{}, err
	}
	views, err := scanInvoiceViews(rows, h.loc)
	if err != nil {
		return GetPackInfoQueryResponse{}, err
	}
	if len(views) == 0 {
		return GetPackInfoQueryResponse{}, errs.NewObjectNotFoundError("invoice", query.InvoiceID().String())
	}
	inv := views[0]

	packDay := h.clock.Now()
	if inv.Status == invoice.Packed && inv.PackCompletedAt != nil {
		packDay = *inv.PackCompletedAt
	}
	start, end := dayBounds(packDay, h.loc)

	resp := GetPackInfoQueryResponse{
		InvoiceID:    inv.ID,
		Number:       inv.Number,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		Courier:      inv.Courier,
		CourierDate:  start,
	}

	resp.InvoiceNumbers = make([]string, 0)
	err = h.db.WithContext(ctx).Raw(`
		SELECT invoice_number
		FROM invoices
		WHERE customer_id = ? AND courier_name = ? AND status = ?
		  AND pack_completed_at >= ? AND pack_completed_at < ?
		ORDER BY invoice_number
	`, inv.CustomerID.Raw(), inv.Courier.String(), invoice.Packed.String(), start, end).
		Scan(&resp.InvoiceNumbers).Error
	if err != nil {
		return GetPackInfoQueryResponse{}, err
	}
	if !slices.Contains(resp.InvoiceNumbers, inv.Number) {
		resp.InvoiceNumbers = append(resp.InvoiceNumbers, inv.Number)
		slices.Sort(resp.InvoiceNumbers)
	}

	fbRows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+feedbackViewColumns+`
		FROM feedback
		WHERE customer_id = ? AND courier_name = ? AND courier_date = ?::date
	`, inv.CustomerID.Raw(), inv.Courier.String(), pgdate.Param(start)).Rows()
	if err != nil {
		return GetPackInfoQueryResponse{}, err
	}
	aggregates, err := scanFeedbackViews(fbRows, h.loc)
	if err != nil {
		return GetPackInfoQueryResponse{}, err
	}
	if len(aggregates) > 0 {
		f := aggregates[0]
		resp.FeedbackID = &f.ID
		resp.NoOfBox = f.NoOfBox
		resp.Weight = f.Weight
	}

	return resp, nil
}
