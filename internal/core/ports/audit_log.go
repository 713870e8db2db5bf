package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Audit actions.
const (
	AuditOverrideStartVerify = "override_start_verify"
	AuditAdminMarkTaken      = "admin_mark_taken"
	AuditAdminMarkPacked     = "admin_mark_packed"
	AuditEditInvoice         = "edit_invoice"
)

// AuditEvent records a privileged action on an invoice. Details is stored as
// JSON.
type AuditEvent struct {
	ID        kernel.UUID
	InvoiceID kernel.UUID
	Action    string
	Actor     string
	Details   any
	At        time.Time
}

// AuditLog appends audit events. Events are written in the same transaction
// as the change they describe.
type AuditLog interface {
	Append(ctx context.Context, event AuditEvent) error
}
