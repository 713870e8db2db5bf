package services

import (
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// PackedInvoice is the slice of a packed invoice the aggregator needs.
type PackedInvoice struct {
	InvoiceID       kernel.UUID
	Number          string
	CustomerID      kernel.UUID
	CustomerName    string
	Courier         kernel.Courier
	PackCompletedAt time.Time
}

// CourierBoxRow is one (courier, date, customer) bucket of the day-end
// courier list. RowID is the id of the feedback aggregate that stores the box
// count; it is nil only if the aggregate is missing.
type CourierBoxRow struct {
	RowID             *kernel.UUID
	Courier           kernel.Courier
	CourierDate       time.Time
	CustomerID        kernel.UUID
	CustomerName      string
	InvoiceCount      int
	InvoiceNumbers    []string
	NoOfBox           *int
	DispatchConfirmed bool
}

// HasBoxCount reports whether the row is ready for dispatch.
func (r CourierBoxRow) HasBoxCount() bool {
	return r.NoOfBox != nil && *r.NoOfBox > 0
}

// CourierBoxAggregator builds the day-end courier list: packed invoices
// grouped by courier, then by pack date, then by customer. Local deliveries
// are hand-carried and left out.
//
// Example usage:
//
//	rows := services.NewCourierBoxAggregator().Aggregate(packed, aggregates)
//	for _, m := range services.MissingBoxCounts(rows) {
//	    log.Warn("box count missing", zap.String("customer", m.CustomerName))
//	}
type CourierBoxAggregator struct{}

func NewCourierBoxAggregator() CourierBoxAggregator {
	return CourierBoxAggregator{}
}

type bucketKey struct {
	courier  kernel.Courier
	date     time.Time
	customer kernel.UUID
}

// Aggregate groups invoices and attaches the matching feedback aggregate to
// every bucket. Pack dates are taken in the location of PackCompletedAt, so
// callers convert to the business time zone first.
//
// Rows are ordered by courier (ST before Professional), date, then customer
// name ignoring case.
func (CourierBoxAggregator) Aggregate(invoices []PackedInvoice, aggregates []*feedback.Feedback) []CourierBoxRow {
	byKey := make(map[bucketKey]*feedback.Feedback, len(aggregates))
	for _, f := range aggregates {
		k := f.Key()
		byKey[bucketKey{courier: k.Courier, date: k.CourierDate, customer: k.CustomerID}] = f
	}

	buckets := make(map[bucketKey]*CourierBoxRow)
	for _, inv := range invoices {
		if !inv.Courier.IsDispatchable() {
			continue
		}
		k := bucketKey{courier: inv.Courier, date: kernel.DayOf(inv.PackCompletedAt), customer: inv.CustomerID}
		row, ok := buckets[k]
		if !ok {
			row = &CourierBoxRow{
				Courier:      k.courier,
				CourierDate:  k.date,
				CustomerID:   k.customer,
				CustomerName: inv.CustomerName,
			}
			if f, found := byKey[k]; found {
				id := f.ID()
				row.RowID = &id
				row.NoOfBox = f.NoOfBox()
				row.DispatchConfirmed = f.DispatchConfirmedAt() != nil
			}
			buckets[k] = row
		}
		row.InvoiceCount++
		row.InvoiceNumbers = append(row.InvoiceNumbers, inv.Number)
	}

	rows := make([]CourierBoxRow, 0, len(buckets))
	for _, row := range buckets {
		slices.Sort(row.InvoiceNumbers)
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, compareRows)
	return rows
}

func courierRank(c kernel.Courier) int {
	return slices.Index(kernel.Couriers(), c)
}

func compareRows(a, b CourierBoxRow) int {
	if d := courierRank(a.Courier) - courierRank(b.Courier); d != 0 {
		return d
	}
	if c := a.CourierDate.Compare(b.CourierDate); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.CustomerName), strings.ToLower(b.CustomerName)); c != 0 {
		return c
	}
	return strings.Compare(a.CustomerID.String(), b.CustomerID.String())
}

// MissingBoxCounts lists the rows that would fail a dispatch confirmation.
func MissingBoxCounts(rows []CourierBoxRow) []errs.MissingBoxCount {
	var out []errs.MissingBoxCount
	for _, r := range rows {
		if r.HasBoxCount() {
			continue
		}
		m := errs.MissingBoxCount{
			CustomerID:   r.CustomerID.String(),
			CustomerName: r.CustomerName,
			CourierName:  r.Courier.String(),
		}
		if r.RowID != nil {
			m.RowID = r.RowID.String()
		}
		out = append(out, m)
	}
	return out
}
