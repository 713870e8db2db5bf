// Package postgres provides the GORM implementation of the Unit of Work used
// by every fulfillment command.
//
// Each unit of work is one SERIALIZABLE transaction. A workflow transition
// reads the invoice, counts the actor's active jobs, and writes the new status
// with a compare-and-set; running all three in one serializable transaction
// makes the workload count and the status write a single atomic step, so two
// concurrent starts by the same person cannot both pass the cap.
//
// Serialization failures and deadlocks surface as errs.ErrConflict, either
// from the statement that detected them or from Commit. The core never
// retries; the caller decides.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	inv, err := uow.InvoiceRepository().Get(ctx, id)
//	// ... domain transition
//	if err := uow.InvoiceRepository().Transition(ctx, inv, from); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run outside the transaction against the
// plain connection. A unit of work is not safe for concurrent use; create
// one per command.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/postgres/feedbackrepo"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/adapters/out/postgres/staffrepo"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on one GORM connection.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	loc *time.Location
}

// NewGormUnitOfWorkFactory creates a factory. loc is the business time zone
// that DATE columns are read into; nil keeps UTC.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, loc)
func NewGormUnitOfWorkFactory(db *gorm.DB, loc *time.Location) *GormUnitOfWorkFactory {
	if loc == nil {
		loc = time.UTC
	}
	return &GormUnitOfWorkFactory{db: db, loc: loc}
}

// Create returns a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.New()
}

// New is Create with the concrete type, which satisfies every narrow
// unit-of-work interface of the commands package.
func (f *GormUnitOfWorkFactory) New() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		loc:               f.loc,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one serializable transaction across the
// invoice, feedback, customer, staff and audit tables.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	loc               *time.Location
	trackedAggregates []trackedAggregate
}

// Begin starts a SERIALIZABLE transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes the transaction's writes permanent. A serialization failure
// at commit time is returned as a Conflict error.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Map(err, "transaction", "commit", "")
}

// Rollback discards the transaction. It fails with gorm.ErrInvalidTransaction
// when nothing is open, which is the normal case after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn(), uow, uow.loc)
}

func (uow *GormUnitOfWork) FeedbackRepository() ports.FeedbackRepository {
	return feedbackrepo.NewGormFeedbackRepository(uow.conn(), uow, uow.loc)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StaffDirectory() ports.StaffDirectory {
	return staffrepo.NewGormStaffDirectory(uow.conn())
}

func (uow *GormUnitOfWork) AuditLog() ports.AuditLog {
	return auditrepo.NewGormAuditLog(uow.conn())
}

// TrackAggregate registers an aggregate written by a repository.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// WrittenInvoiceDays returns the distinct invoice dates of the invoices
// written through this unit of work, in write order.
func (uow *GormUnitOfWork) WrittenInvoiceDays() []time.Time {
	days := make([]time.Time, 0, len(uow.trackedAggregates))
	seen := make(map[string]struct{}, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		inv, ok := tracked.Aggregate.(*invoice.Invoice)
		if !ok {
			continue
		}
		date := inv.InvoiceDate().Format(time.DateOnly)
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		days = append(days, inv.InvoiceDate())
	}
	return days
}
