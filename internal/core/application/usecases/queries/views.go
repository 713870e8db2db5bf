package queries

import (
	"database/sql"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceView is the read model of one invoice row.
type InvoiceView struct {
	ID               kernel.UUID
	Number           string
	InvoiceDate      time.Time
	CustomerID       kernel.UUID
	CustomerName     string
	RepName          string
	Courier          kernel.Courier
	NoOfProducts     int
	Value            *decimal.Decimal
	Status           invoice.Status
	CreatedBy        string
	CreatedAt        time.Time
	TakenBy          string
	PackedBy         string
	TakeStartedAt    *time.Time
	TakeCompletedAt  *time.Time
	VerifyStartedAt  *time.Time
	PackCompletedAt  *time.Time
	VerifyOverridden bool
}

// FeedbackView is the read model of one feedback aggregate.
type FeedbackView struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	CustomerName        string
	Courier             kernel.Courier
	CourierDate         time.Time
	InvoiceCount        int
	NoOfBox             *int
	Weight              *decimal.Decimal
	StockReceived       feedback.TriState
	StocksOK            feedback.TriState
	FollowUp            string
	FeedbackTime        *time.Time
	IssueResolvedTime   *time.Time
	DispatchConfirmedAt *time.Time
}

const invoiceViewColumns = `
	id, invoice_number, invoice_date, customer_id, customer_name, rep_name,
	courier_name, no_of_products, invoice_value, status, created_by, created_at,
	coalesce(taken_by, ''), coalesce(packed_by, ''),
	take_started_at, take_completed_at, verify_started_at, pack_completed_at,
	verify_overridden`

const feedbackViewColumns = `
	id, customer_id, customer_name, courier_name, courier_date, invoice_count,
	no_of_box, weight, stock_received, stocks_ok, coalesce(follow_up, ''),
	feedback_time, issue_resolved_time, dispatch_confirmed_at`

func scanInvoiceView(rows *sql.Rows, loc *time.Location) (InvoiceView, error) {
	var (
		v               InvoiceView
		id, customerID  uuid.UUID
		courier, status string
		repName         sql.NullString
		invoiceDate     time.Time
	)
	err := rows.Scan(
		&id, &v.Number, &invoiceDate, &customerID, &v.CustomerName, &repName,
		&courier, &v.NoOfProducts, &v.Value, &status, &v.CreatedBy, &v.CreatedAt,
		&v.TakenBy, &v.PackedBy,
		&v.TakeStartedAt, &v.TakeCompletedAt, &v.VerifyStartedAt, &v.PackCompletedAt,
		&v.VerifyOverridden,
	)
	if err != nil {
		return InvoiceView{}, err
	}

	if v.ID, err = kernel.UUIDFrom(id); err != nil {
		return InvoiceView{}, err
	}
	if v.CustomerID, err = kernel.UUIDFrom(customerID); err != nil {
		return InvoiceView{}, err
	}
	if v.Courier, err = kernel.ParseCourier(courier); err != nil {
		return InvoiceView{}, err
	}
	if v.Status, err = invoice.ParseStatus(status); err != nil {
		return InvoiceView{}, err
	}
	v.RepName = repName.String
	v.InvoiceDate = pgdate.FromColumn(invoiceDate, loc)
	v.CreatedAt = v.CreatedAt.In(loc)
	v.TakeStartedAt = instantIn(v.TakeStartedAt, loc)
	v.TakeCompletedAt = instantIn(v.TakeCompletedAt, loc)
	v.VerifyStartedAt = instantIn(v.VerifyStartedAt, loc)
	v.PackCompletedAt = instantIn(v.PackCompletedAt, loc)
	return v, nil
}

// invoiceViewOf renders a loaded aggregate with its instants in loc.
func invoiceViewOf(inv *invoice.Invoice, loc *time.Location) InvoiceView {
	return InvoiceView{
		ID:               inv.ID(),
		Number:           inv.Number().String(),
		InvoiceDate:      pgdate.FromColumn(inv.InvoiceDate(), loc),
		CustomerID:       inv.Customer().ID,
		CustomerName:     inv.Customer().Name,
		RepName:          inv.RepName(),
		Courier:          inv.Courier(),
		NoOfProducts:     inv.NoOfProducts(),
		Value:            inv.Value(),
		Status:           inv.Status(),
		CreatedBy:        inv.CreatedBy(),
		CreatedAt:        inv.CreatedAt().In(loc),
		TakenBy:          inv.TakenBy(),
		PackedBy:         inv.PackedBy(),
		TakeStartedAt:    instantIn(inv.TakeStartedAt(), loc),
		TakeCompletedAt:  instantIn(inv.TakeCompletedAt(), loc),
		VerifyStartedAt:  instantIn(inv.VerifyStartedAt(), loc),
		PackCompletedAt:  instantIn(inv.PackCompletedAt(), loc),
		VerifyOverridden: inv.VerifyOverridden(),
	}
}

func scanInvoiceViews(rows *sql.Rows, loc *time.Location) ([]InvoiceView, error) {
	defer rows.Close()

	views := make([]InvoiceView, 0)
	for rows.Next() {
		v, err := scanInvoiceView(rows, loc)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func scanFeedbackSnapshot(rows *sql.Rows, loc *time.Location) (feedback.Snapshot, error) {
	var (
		s                       feedback.Snapshot
		id, customerID          uuid.UUID
		courier                 string
		courierDate             time.Time
		stockReceived, stocksOK *bool
	)
	err := rows.Scan(
		&id, &customerID, &s.CustomerName, &courier, &courierDate, &s.InvoiceCount,
		&s.NoOfBox, &s.Weight, &stockReceived, &stocksOK, &s.FollowUp,
		&s.FeedbackTime, &s.IssueResolvedTime, &s.DispatchConfirmedAt,
	)
	if err != nil {
		return feedback.Snapshot{}, err
	}

	if s.ID, err = kernel.UUIDFrom(id); err != nil {
		return feedback.Snapshot{}, err
	}
	cid, err := kernel.UUIDFrom(customerID)
	if err != nil {
		return feedback.Snapshot{}, err
	}
	c, err := kernel.ParseCourier(courier)
	if err != nil {
		return feedback.Snapshot{}, err
	}
	if s.Key, err = feedback.NewKey(cid, c, pgdate.FromColumn(courierDate, loc)); err != nil {
		return feedback.Snapshot{}, err
	}
	s.StockReceived = feedback.TriStateFromBool(stockReceived)
	s.StocksOK = feedback.TriStateFromBool(stocksOK)
	s.FeedbackTime = instantIn(s.FeedbackTime, loc)
	s.IssueResolvedTime = instantIn(s.IssueResolvedTime, loc)
	s.DispatchConfirmedAt = instantIn(s.DispatchConfirmedAt, loc)
	return s, nil
}

func scanFeedbackViews(rows *sql.Rows, loc *time.Location) ([]FeedbackView, error) {
	defer rows.Close()

	views := make([]FeedbackView, 0)
	for rows.Next() {
		s, err := scanFeedbackSnapshot(rows, loc)
		if err != nil {
			return nil, err
		}
		views = append(views, feedbackViewOf(s))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func feedbackViewOf(s feedback.Snapshot) FeedbackView {
	return FeedbackView{
		ID:                  s.ID,
		CustomerID:          s.Key.CustomerID,
		CustomerName:        s.CustomerName,
		Courier:             s.Key.Courier,
		CourierDate:         s.Key.CourierDate,
		InvoiceCount:        s.InvoiceCount,
		NoOfBox:             s.NoOfBox,
		Weight:              s.Weight,
		StockReceived:       s.StockReceived,
		StocksOK:            s.StocksOK,
		FollowUp:            s.FollowUp,
		FeedbackTime:        s.FeedbackTime,
		IssueResolvedTime:   s.IssueResolvedTime,
		DispatchConfirmedAt: s.DispatchConfirmedAt,
	}
}

// dayBounds returns [start, end) of the business day containing t.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := kernel.DayOf(t.In(loc))
	return start, start.AddDate(0, 0, 1)
}

func instantIn(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
