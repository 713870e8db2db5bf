package feedbackrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var mutableColumns = []string{
	"no_of_box", "weight", "stock_received", "stocks_ok", "follow_up",
	"feedback_time", "issue_resolved_time", "dispatch_confirmed_at",
}

// GormFeedbackRepository implements ports.FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	loc     *time.Location
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFeedbackRepository creates a repository. loc is the business time
// zone that courier dates are read into.
func NewGormFeedbackRepository(db *gorm.DB, tracker aggregateTracker, loc *time.Location) *GormFeedbackRepository {
	return &GormFeedbackRepository{
		db:      db,
		tracker: tracker,
		loc:     loc,
	}
}

// AddInvoice inserts the aggregate for key with a count of one, or increments
// the count of the existing row, in one statement.
func (r *GormFeedbackRepository) AddInvoice(
	ctx context.Context,
	key feedback.Key,
	customerName string,
) (*feedback.Feedback, error) {
	fresh, err := feedback.NewFeedback(kernel.NewUUID(), key, customerName)
	if err != nil {
		return nil, err
	}
	fresh.AddInvoice()

	dto := fromDomain(fresh)
	err = r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "customer_id"}, {Name: "courier_name"}, {Name: "courier_date"}},
				DoUpdates: clause.Assignments(map[string]any{
					"invoice_count": gorm.Expr("feedback.invoice_count + 1"),
				}),
			},
			clause.Returning{},
		).
		Create(&dto).Error
	if err != nil {
		return nil, pgerr.Map(err, "feedback", key.String(), "")
	}

	aggregate, err := toDomain(dto, r.loc)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// Update writes the mutable columns. The invoice count is owned by AddInvoice.
func (r *GormFeedbackRepository) Update(ctx context.Context, aggregate *feedback.Feedback) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&FeedbackDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error, "feedback", aggregate.ID(), "")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("feedback", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an aggregate by ID.
func (r *GormFeedbackRepository) Get(ctx context.Context, id kernel.UUID) (*feedback.Feedback, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FeedbackDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("feedback", id.String())
		}
		return nil, pgerr.Map(err, "feedback", id, "")
	}

	return toDomain(dto, r.loc)
}

// GetForUpdate loads and row-locks every aggregate in ids, ordered by id so
// concurrent callers lock in the same order.
func (r *GormFeedbackRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*feedback.Feedback, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("row_ids")
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.String())
	}

	var dtos []FeedbackDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ANY(?::uuid[])", pq.Array(raw)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Map(err, "feedback", "dispatch", "")
	}

	found := make(map[string]struct{}, len(dtos))
	for _, dto := range dtos {
		found[dto.ID.String()] = struct{}{}
	}
	for _, id := range raw {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundError("feedback", id)
		}
	}

	return toDomainList(dtos, r.loc)
}

// ListByDate returns the aggregates of one courier date ordered by customer
// and courier.
func (r *GormFeedbackRepository) ListByDate(ctx context.Context, day time.Time) ([]*feedback.Feedback, error) {
	var dtos []FeedbackDTO
	err := r.db.WithContext(ctx).
		Where("courier_date = ?::date", pgdate.Param(day)).
		Order("lower(customer_name), courier_name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos, r.loc)
}
