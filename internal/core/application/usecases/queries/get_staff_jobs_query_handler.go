package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"

	"gorm.io/gorm"
)

type GetStaffJobsQueryHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewGetStaffJobsQueryHandler(db *gorm.DB, loc *time.Location) GetStaffJobsQueryHandler {
	return GetStaffJobsQueryHandler{db: db, loc: locationOrUTC(loc)}
}

func (h GetStaffJobsQueryHandler) Handle(
	ctx context.Context,
	query GetStaffJobsQuery,
) (GetStaffJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStaffJobsQueryResponse{}, err
	}

	user := query.Username()
	var (
		resp GetStaffJobsQueryResponse
		err  error
	)

	resp.MyJobs, err = h.list(ctx, `
		(taken_by = ? AND status = ?) OR (packed_by = ? AND status = ?)
	`, "coalesce(verify_started_at, take_started_at)",
		user, invoice.Taking.String(), user, invoice.Verifying.String())
	if err != nil {
		return GetStaffJobsQueryResponse{}, err
	}

	resp.BillsToTake, err = h.list(ctx, "status = ?", "invoice_number",
		invoice.ToTake.String())
	if err != nil {
		return GetStaffJobsQueryResponse{}, err
	}

	resp.BillsToVerify, err = h.list(ctx, "status = ? AND taken_by <> ?", "take_completed_at, invoice_number",
		invoice.ToVerify.String(), user)
	if err != nil {
		return GetStaffJobsQueryResponse{}, err
	}

	return resp, nil
}

func (h GetStaffJobsQueryHandler) list(
	ctx context.Context,
	where string,
	order string,
	args ...any,
) ([]InvoiceView, error) {
	rows, err := h.db.WithContext(ctx).
		Table("invoices").
		Select(invoiceViewColumns).
		Where(where, args...).
		Order(order).
		Rows()
	if err != nil {
		return nil, err
	}
	return scanInvoiceViews(rows, h.loc)
}
