package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Transactions run at SERIALIZABLE
// isolation; a serialization failure surfaces from the failing statement or
// from Commit as a Conflict error.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	InvoiceRepository() InvoiceRepository
	FeedbackRepository() FeedbackRepository
	CustomerRepository() CustomerRepository
	StaffDirectory() StaffDirectory
	AuditLog() AuditLog
}
