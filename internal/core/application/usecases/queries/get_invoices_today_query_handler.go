package queries

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/invoice"

	"gorm.io/gorm"
)

type GetInvoicesTodayQueryHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewGetInvoicesTodayQueryHandler(db *gorm.DB, loc *time.Location) GetInvoicesTodayQueryHandler {
	return GetInvoicesTodayQueryHandler{db: db, loc: locationOrUTC(loc)}
}

// Handle returns the tab ordered by invoice number.
func (h GetInvoicesTodayQueryHandler) Handle(
	ctx context.Context,
	query GetInvoicesTodayQuery,
) (GetInvoicesTodayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoicesTodayQueryResponse{}, err
	}

	day := pgdate.Param(query.Day().In(h.loc))

	counts, err := h.counts(ctx, day)
	if err != nil {
		return GetInvoicesTodayQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).
		Table("invoices").
		Select(invoiceViewColumns).
		Where("invoice_date = ?::date", day)

	switch query.Tab() {
	case TabAll:
	case TabOutstanding:
		tx = tx.Where("status <> ?", invoice.Packed.String())
	default:
		tx = tx.Where("status = ?", query.Tab())
	}
	if query.SameCustomer() != "" {
		tx = tx.Where("lower(regexp_replace(trim(customer_name), '\\s+', ' ', 'g')) = ?", query.SameCustomer())
	}

	rows, err := tx.Order("invoice_number").Rows()
	if err != nil {
		return GetInvoicesTodayQueryResponse{}, err
	}

	views, err := scanInvoiceViews(rows, h.loc)
	if err != nil {
		return GetInvoicesTodayQueryResponse{}, err
	}

	return GetInvoicesTodayQueryResponse{
		Tab:      query.Tab(),
		Invoices: views,
		Counts:   counts,
	}, nil
}

func (h GetInvoicesTodayQueryHandler) counts(ctx context.Context, day string) (map[string]int, error) {
	counts := map[string]int{TabAll: 0, TabOutstanding: 0}
	for _, s := range invoice.Statuses() {
		counts[s.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, count(*)
		FROM invoices
		WHERE invoice_date = ?::date
		GROUP BY status
	`, day).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			raw string
			n   int
		)
		if err = rows.Scan(&raw, &n); err != nil {
			return nil, err
		}
		s, parseErr := invoice.ParseStatus(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[s.String()] += n
		counts[TabAll] += n
		if s != invoice.Packed {
			counts[TabOutstanding] += n
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
