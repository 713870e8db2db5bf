package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPackInfoQueryIsNotConstructed = errors.New(
	"GetPackInfoQuery must be created via NewGetPackInfoQuery constructor",
)

// GetPackInfoQuery shows a verifier which box the invoice will join before
// they pack it.
type GetPackInfoQuery struct {
	invoiceID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetPackInfoQuery(invoiceID kernel.UUID) (GetPackInfoQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetPackInfoQuery{}, err
	}
	return GetPackInfoQuery{invoiceID: invoiceID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetPackInfoQueryIsNotConstructed)
}

func (q GetPackInfoQuery) InvoiceID() kernel.UUID { return q.invoiceID }

// GetPackInfoQueryResponse describes the feedback aggregate for the
// invoice's customer and courier on the pack day. InvoiceNumbers lists the
// invoices already packed into it plus this one. FeedbackID, NoOfBox and
// Weight are nil while nothing has been packed for the group yet.
type GetPackInfoQueryResponse struct {
	InvoiceID      kernel.UUID
	Number         string
	CustomerID     kernel.UUID
	CustomerName   string
	Courier        kernel.Courier
	CourierDate    time.Time
	InvoiceNumbers []string
	FeedbackID     *kernel.UUID
	NoOfBox        *int
	Weight         *decimal.Decimal
}
