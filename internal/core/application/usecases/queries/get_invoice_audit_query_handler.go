package queries

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceByNumberReader loads one invoice by its business key.
// ports.InvoiceRepository satisfies it.
type InvoiceByNumberReader interface {
	GetByNumber(ctx context.Context, number kernel.InvoiceNumber) (*invoice.Invoice, error)
}

type GetInvoiceAuditQueryHandler struct {
	invoices InvoiceByNumberReader
	db       *gorm.DB
	loc      *time.Location
}

func NewGetInvoiceAuditQueryHandler(
	invoices InvoiceByNumberReader,
	db *gorm.DB,
	loc *time.Location,
) GetInvoiceAuditQueryHandler {
	return GetInvoiceAuditQueryHandler{invoices: invoices, db: db, loc: locationOrUTC(loc)}
}

func (h GetInvoiceAuditQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceAuditQuery,
) (GetInvoiceAuditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceAuditQueryResponse{}, err
	}

	inv, err := h.invoices.GetByNumber(ctx, query.Number())
	if err != nil {
		return GetInvoiceAuditQueryResponse{}, err
	}

	resp := GetInvoiceAuditQueryResponse{Invoice: invoiceViewOf(inv, h.loc)}

	if packedAt := resp.Invoice.PackCompletedAt; packedAt != nil {
		resp.Feedback, err = h.feedbackFor(ctx, resp.Invoice, *packedAt)
		if err != nil {
			return GetInvoiceAuditQueryResponse{}, err
		}
	}

	resp.Events, err = h.events(ctx, resp.Invoice.ID)
	if err != nil {
		return GetInvoiceAuditQueryResponse{}, err
	}
	return resp, nil
}

func (h GetInvoiceAuditQueryHandler) feedbackFor(
	ctx context.Context,
	inv InvoiceView,
	packedAt time.Time,
) (*FeedbackView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+feedbackViewColumns+`
		FROM feedback
		WHERE customer_id = ? AND courier_name = ? AND courier_date = ?::date
	`, inv.CustomerID.Raw(), inv.Courier.String(), pgdate.Param(packedAt.In(h.loc))).Rows()
	if err != nil {
		return nil, err
	}

	views, err := scanFeedbackViews(rows, h.loc)
	if err != nil || len(views) == 0 {
		return nil, err
	}
	return &views[0], nil
}

func (h GetInvoiceAuditQueryHandler) events(ctx context.Context, invoiceID kernel.UUID) ([]AuditEventView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, action, actor, details, at
		FROM invoice_audit
		WHERE invoice_id = ?
		ORDER BY at, id
	`, invoiceID.Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]AuditEventView, 0)
	for rows.Next() {
		var (
			e       AuditEventView
			id      uuid.UUID
			details []byte
		)
		if err = rows.Scan(&id, &e.Action, &e.Actor, &details, &e.At); err != nil {
			return nil, err
		}
		if e.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			e.Details = json.RawMessage(details)
		}
		e.At = e.At.In(h.loc)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
