package queries

import (
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetInvoiceAuditQueryIsNotConstructed = errors.New(
	"GetInvoiceAuditQuery must be created via NewGetInvoiceAuditQuery constructor",
)

// GetInvoiceAuditQuery looks an invoice up by number for the audit screen.
type GetInvoiceAuditQuery struct {
	number kernel.InvoiceNumber
	guard  guard.ConstructorGuard
}

func NewGetInvoiceAuditQuery(number string) (GetInvoiceAuditQuery, error) {
	n, err := kernel.NewInvoiceNumber(number)
	if err != nil {
		return GetInvoiceAuditQuery{}, err
	}
	return GetInvoiceAuditQuery{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInvoiceAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceAuditQueryIsNotConstructed)
}

func (q GetInvoiceAuditQuery) Number() kernel.InvoiceNumber { return q.number }

// AuditEventView is one stored audit event. Details is the raw JSON payload.
type AuditEventView struct {
	ID      kernel.UUID
	Action  string
	Actor   string
	Details json.RawMessage
	At      time.Time
}

// GetInvoiceAuditQueryResponse is the invoice, the feedback aggregate it was
// packed into (nil until packed), and its audit trail oldest first.
type GetInvoiceAuditQueryResponse struct {
	Invoice  InvoiceView
	Feedback *FeedbackView
	Events   []AuditEventView
}
