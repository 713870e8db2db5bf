package invoicerepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	workflowColumns = []string{
		"status", "taken_by", "take_started_at", "take_completed_at",
		"packed_by", "verify_started_at", "pack_completed_at", "verify_overridden",
	}
	contentColumns = []string{
		"invoice_number", "invoice_date", "customer_id", "customer_name",
		"rep_name", "courier_name", "no_of_products", "invoice_value",
	}
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	loc     *time.Location
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a repository. loc is the business time
// zone that DATE columns are read into.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker, loc *time.Location) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
		loc:     loc,
	}
}

// Add saves a new invoice.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, "invoice", aggregate.ID(), "invoice_number")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Transition writes the workflow columns when the stored status still equals
// expected.
func (r *GormInvoiceRepository) Transition(
	ctx context.Context,
	aggregate *invoice.Invoice,
	expected invoice.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select(workflowColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error, "invoice", aggregate.ID(), "")
	}

	if result.RowsAffected == 0 {
		return r.missingOrMoved(ctx, aggregate.ID(), expected)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateContent writes the editable content columns.
func (r *GormInvoiceRepository) UpdateContent(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select(contentColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error, "invoice", aggregate.ID(), "invoice_number")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, pgerr.Map(err, "invoice", id, "")
	}

	return toDomain(dto, r.loc)
}

// GetByNumber retrieves an invoice by its number.
func (r *GormInvoiceRepository) GetByNumber(
	ctx context.Context,
	number kernel.InvoiceNumber,
) (*invoice.Invoice, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "invoice_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", number.String())
		}
		return nil, pgerr.Map(err, "invoice", number, "")
	}

	return toDomain(dto, r.loc)
}

// CountActiveJobs counts invoices the user is taking or verifying.
func (r *GormInvoiceRepository) CountActiveJobs(ctx context.Context, username string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("(taken_by = ? AND status = ?) OR (packed_by = ? AND status = ?)",
			username, invoice.Taking.String(), username, invoice.Verifying.String()).
		Count(&count).Error
	if err != nil {
		return 0, pgerr.Map(err, "staff", username, "")
	}
	return int(count), nil
}

// ListNumbersByDate returns the invoice numbers dated day in ascending order.
func (r *GormInvoiceRepository) ListNumbersByDate(ctx context.Context, day time.Time) ([]string, error) {
	numbers := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("invoice_date = ?::date", pgdate.Param(day)).
		Order("invoice_number").
		Pluck("invoice_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// missingOrMoved tells a vanished row from a lost compare-and-set.
func (r *GormInvoiceRepository) missingOrMoved(ctx context.Context, id kernel.UUID, expected invoice.Status) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", id.Raw()).Count(&count).Error; err != nil {
		return pgerr.Map(err, "invoice", id, "")
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("invoice", id.String())
	}
	return errs.NewConflictErrorWithCause("invoice", id.String(),
		errors.New("status changed from "+expected.String()+" by a concurrent update"))
}
