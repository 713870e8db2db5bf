// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, caches, exporters and the unit of work.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// InvoiceRepository persists invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice. A second invoice with the same number fails
	// with a ValueIsInvalid error for invoice_number.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Transition writes the workflow fields of aggregate (status, owners,
	// timestamps) only if the stored status still equals expected. When the
	// stored status has moved on it returns a Conflict error and writes
	// nothing: this compare-and-set is the sole concurrency control of the
	// workflow.
	Transition(ctx context.Context, aggregate *invoice.Invoice, expected invoice.Status) error

	// UpdateContent writes the editable content fields (number, customer,
	// date, rep, courier, quantity, value). Workflow fields are never touched.
	UpdateContent(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by id.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByNumber retrieves an invoice by its business key.
	GetByNumber(ctx context.Context, number kernel.InvoiceNumber) (*invoice.Invoice, error)

	// CountActiveJobs returns how many invoices username currently owns:
	// taken_by = username in TAKING plus packed_by = username in VERIFYING.
	// Called inside the transition's transaction so the count and the
	// compare-and-set observe the same snapshot.
	CountActiveJobs(ctx context.Context, username string) (int, error)

	// ListNumbersByDate returns the invoice numbers issued on day.
	ListNumbersByDate(ctx context.Context, day time.Time) ([]string, error)
}
