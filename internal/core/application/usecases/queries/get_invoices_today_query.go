package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetInvoicesTodayQueryIsNotConstructed = errors.New(
	"GetInvoicesTodayQuery must be created via NewGetInvoicesTodayQuery constructor",
)

// Tab names besides the statuses.
const (
	TabAll         = "ALL"
	TabOutstanding = "OUTSTANDING"
)

// GetInvoicesTodayQuery lists the invoices billed on a day under one tab.
// SameCustomer, when set, keeps only invoices for that customer name,
// compared ignoring case and spacing; billing uses it to spot duplicates.
type GetInvoicesTodayQuery struct {
	day          time.Time
	tab          string
	status       invoice.Status
	sameCustomer string
	guard        guard.ConstructorGuard
}

// NewGetInvoicesTodayQuery accepts ALL, OUTSTANDING or any status name,
// legacy names included. An empty tab means ALL.
func NewGetInvoicesTodayQuery(day time.Time, tab, sameCustomer string) (GetInvoicesTodayQuery, error) {
	if day.IsZero() {
		return GetInvoicesTodayQuery{}, errs.NewValueIsRequiredError("day")
	}

	q := GetInvoicesTodayQuery{
		day:          day,
		sameCustomer: customer.NormalizeName(sameCustomer),
		guard:        guard.NewConstructorGuard(),
	}

	switch t := strings.ToUpper(strings.TrimSpace(tab)); t {
	case "", TabAll:
		q.tab = TabAll
	case TabOutstanding:
		q.tab = TabOutstanding
	default:
		s, err := invoice.ParseStatus(t)
		if err != nil {
			return GetInvoicesTodayQuery{}, errs.NewValueIsInvalidErrorWithCause("tab",
				fmt.Errorf("%q is neither a status, %s nor %s", tab, TabAll, TabOutstanding))
		}
		q.tab = s.String()
		q.status = s
	}
	return q, nil
}

func (q GetInvoicesTodayQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesTodayQueryIsNotConstructed)
}

func (q GetInvoicesTodayQuery) Day() time.Time       { return q.day }
func (q GetInvoicesTodayQuery) Tab() string          { return q.tab }
func (q GetInvoicesTodayQuery) SameCustomer() string { return q.sameCustomer }

// GetInvoicesTodayQueryResponse carries the tab's invoices and the count of
// every tab, so the UI can label them without further calls. Counts ignore
// the same-customer filter.
type GetInvoicesTodayQueryResponse struct {
	Tab      string
	Invoices []InvoiceView
	Counts   map[string]int
}
