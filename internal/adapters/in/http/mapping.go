package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func toDate(t time.Time) types.Date {
	return types.Date{Time: t}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := d.StringFixed(2)
	return &v
}

func parseDecimal(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return &d, nil
}

func kernelID(field string, id types.UUID) (kernel.UUID, error) {
	k, err := kernel.UUIDFrom(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return k, nil
}

func invoiceOf(i *invoice.Invoice) servers.Invoice {
	return servers.Invoice{
		Id:               i.ID().Raw(),
		InvoiceNumber:    i.Number().String(),
		InvoiceDate:      toDate(i.InvoiceDate()),
		CustomerId:       i.Customer().ID.Raw(),
		CustomerName:     i.Customer().Name,
		RepName:          optString(i.RepName()),
		CourierName:      i.Courier().String(),
		NoOfProducts:     i.NoOfProducts(),
		InvoiceValue:     decimalString(i.Value()),
		Status:           i.Status().String(),
		CreatedBy:        i.CreatedBy(),
		CreatedAt:        i.CreatedAt(),
		TakenBy:          optString(i.TakenBy()),
		TakeStartedAt:    i.TakeStartedAt(),
		TakeCompletedAt:  i.TakeCompletedAt(),
		PackedBy:         optString(i.PackedBy()),
		VerifyStartedAt:  i.VerifyStartedAt(),
		PackCompletedAt:  i.PackCompletedAt(),
		VerifyOverridden: i.VerifyOverridden(),
	}
}

func invoiceViewOf(v queries.InvoiceView) servers.Invoice {
	return servers.Invoice{
		Id:               v.ID.Raw(),
		InvoiceNumber:    v.Number,
		InvoiceDate:      toDate(v.InvoiceDate),
		CustomerId:       v.CustomerID.Raw(),
		CustomerName:     v.CustomerName,
		RepName:          optString(v.RepName),
		CourierName:      v.Courier.String(),
		NoOfProducts:     v.NoOfProducts,
		InvoiceValue:     decimalString(v.Value),
		Status:           v.Status.String(),
		CreatedBy:        v.CreatedBy,
		CreatedAt:        v.CreatedAt,
		TakenBy:          optString(v.TakenBy),
		TakeStartedAt:    v.TakeStartedAt,
		TakeCompletedAt:  v.TakeCompletedAt,
		PackedBy:         optString(v.PackedBy),
		VerifyStartedAt:  v.VerifyStartedAt,
		PackCompletedAt:  v.PackCompletedAt,
		VerifyOverridden: v.VerifyOverridden,
	}
}

func invoiceViewsOf(views []queries.InvoiceView) []servers.Invoice {
	out := make([]servers.Invoice, 0, len(views))
	for _, v := range views {
		out = append(out, invoiceViewOf(v))
	}
	return out
}

func stockReceivedOf(t feedback.TriState) *servers.FeedbackStockReceived {
	if !t.IsSet() {
		return nil
	}
	v := servers.FeedbackStockReceived(t.String())
	return &v
}

func stocksOkOf(t feedback.TriState) *servers.FeedbackStocksOk {
	if !t.IsSet() {
		return nil
	}
	v := servers.FeedbackStocksOk(t.String())
	return &v
}

func feedbackOf(f *feedback.Feedback) servers.Feedback {
	key := f.Key()
	return servers.Feedback{
		Id:                  f.ID().Raw(),
		CustomerId:          key.CustomerID.Raw(),
		CustomerName:        f.CustomerName(),
		CourierName:         key.Courier.String(),
		CourierDate:         toDate(key.CourierDate),
		InvoiceCount:        f.InvoiceCount(),
		NoOfBox:             f.NoOfBox(),
		Weight:              decimalString(f.Weight()),
		StockReceived:       stockReceivedOf(f.StockReceived()),
		StocksOk:            stocksOkOf(f.StocksOK()),
		FollowUp:            optString(f.FollowUp()),
		FeedbackTime:        f.FeedbackTime(),
		IssueResolvedTime:   f.IssueResolvedTime(),
		DispatchConfirmedAt: f.DispatchConfirmedAt(),
	}
}

func feedbackViewOf(v queries.FeedbackView) servers.Feedback {
	return servers.Feedback{
		Id:                  v.ID.Raw(),
		CustomerId:          v.CustomerID.Raw(),
		CustomerName:        v.CustomerName,
		CourierName:         v.Courier.String(),
		CourierDate:         toDate(v.CourierDate),
		InvoiceCount:        v.InvoiceCount,
		NoOfBox:             v.NoOfBox,
		Weight:              decimalString(v.Weight),
		StockReceived:       stockReceivedOf(v.StockReceived),
		StocksOk:            stocksOkOf(v.StocksOK),
		FollowUp:            optString(v.FollowUp),
		FeedbackTime:        v.FeedbackTime,
		IssueResolvedTime:   v.IssueResolvedTime,
		DispatchConfirmedAt: v.DispatchConfirmedAt,
	}
}

func courierBoxRowOf(r services.CourierBoxRow) servers.CourierBoxRow {
	row := servers.CourierBoxRow{
		CourierName:       r.Courier.String(),
		CourierDate:       toDate(r.CourierDate),
		CustomerId:        r.CustomerID.Raw(),
		CustomerName:      r.CustomerName,
		InvoiceCount:      r.InvoiceCount,
		InvoiceNumbers:    r.InvoiceNumbers,
		NoOfBox:           r.NoOfBox,
		DispatchConfirmed: r.DispatchConfirmed,
	}
	if r.RowID != nil {
		id := r.RowID.Raw()
		row.RowId = &id
	}
	if row.InvoiceNumbers == nil {
		row.InvoiceNumbers = make([]string, 0)
	}
	return row
}

func customerOf(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:          c.ID().Raw(),
		Name:        c.Name(),
		City:        optString(c.City()),
		RepName:     optString(c.RepName()),
		CourierName: c.Courier().String(),
	}
}

func customerViewOf(v queries.CustomerView) servers.Customer {
	return servers.Customer{
		Id:          v.ID.Raw(),
		Name:        v.Name,
		City:        optString(v.City),
		RepName:     optString(v.RepName),
		CourierName: v.Courier.String(),
	}
}

func staffCountsOf(c services.StaffCounts) servers.StaffCounts {
	return servers.StaffCounts{
		Staff:     c.Staff,
		Taking:    c.Taking,
		Taken:     c.Taken,
		Verifying: c.Verifying,
		Packed:    c.Packed,
		Total:     c.Total,
	}
}
