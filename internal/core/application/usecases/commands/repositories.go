// Package commands contains the operations that change workflow state.
// Every command follows the same pattern: the constructor validates input,
// the handler opens a unit of work, resolves the acting staff member, loads
// aggregates, applies domain rules, persists and commits.
package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it uses.
// The postgres unit of work satisfies all of them.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	StaffDirectoryFactory interface {
		StaffDirectory() ports.StaffDirectory
	}

	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// WorkflowUoW serves the status transitions that stay within one invoice.
	WorkflowUoW interface {
		TxManager
		InvoiceRepoFactory
		StaffDirectoryFactory
		AuditLogFactory
	}

	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// PackingUoW additionally reaches the feedback aggregate the packed
	// invoice joins.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   invoices := uow.InvoiceRepository()
	//   feedbacks := uow.FeedbackRepository()
	//   // ... transition, then AddInvoice in the same transaction
	//
	//   err = uow.Commit(ctx)
	PackingUoW interface {
		WorkflowUoW
		FeedbackRepoFactory
	}

	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// BillingUoW serves invoice creation and content edits.
	// WrittenInvoiceDays lists the distinct invoice dates of every invoice
	// the unit of work has written; the issued-number cache entries of those
	// days are invalidated after commit.
	BillingUoW interface {
		WorkflowUoW
		CustomerRepoFactory
		WrittenInvoiceDays() []time.Time
	}

	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// FeedbackUoW serves box counts, receipt confirmation and dispatch.
	FeedbackUoW interface {
		TxManager
		FeedbackRepoFactory
	}

	FeedbackUoWFactory interface {
		Create() FeedbackUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	StaffUoW interface {
		TxManager
		StaffDirectoryFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}
)
