package jobs

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDayEndSchedule fires at 21:00 in the business time zone.
const DefaultDayEndSchedule = "0 0 21 * * *"

type CourierBoxesReader interface {
	Handle(ctx context.Context, query queries.GetCourierBoxesQuery) ([]services.CourierBoxRow, error)
}

type PendingFeedbackReader interface {
	Handle(ctx context.Context, query queries.GetPendingFeedbackQuery) ([]queries.FeedbackView, error)
}

// DayFeedbackReader lists the feedback aggregates of one courier date.
// ports.FeedbackRepository satisfies it.
type DayFeedbackReader interface {
	ListByDate(ctx context.Context, day time.Time) ([]*feedback.Feedback, error)
}

// DayEndSummary is what one day-end run found.
type DayEndSummary struct {
	Day             time.Time
	Rows            int
	MissingBoxes    int
	PendingFeedback int
	Undispatched    int
	SheetPath       string
}

// DayEndJob exports the courier dispatch sheet for the business day and
// reports the rows still missing a box count or a dispatch confirmation.
type DayEndJob struct {
	boxes    CourierBoxesReader
	pending  PendingFeedbackReader
	day      DayFeedbackReader
	sheet    ports.DispatchSheetWriter
	clock    kernel.Clock
	loc      *time.Location
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewDayEndJob(
	boxes CourierBoxesReader,
	pending PendingFeedbackReader,
	dayFeedback DayFeedbackReader,
	sheet ports.DispatchSheetWriter,
	clock kernel.Clock,
	loc *time.Location,
	schedule string,
	logger *zap.Logger,
) *DayEndJob {
	if loc == nil {
		loc = time.UTC
	}
	if schedule == "" {
		schedule = DefaultDayEndSchedule
	}
	return &DayEndJob{
		boxes:    boxes,
		pending:  pending,
		day:      dayFeedback,
		sheet:    sheet,
		clock:    clock,
		loc:      loc,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		logger:   logger.With(zap.String("component", "day_end_job")),
	}
}

// Run performs one day-end pass for the current business day.
func (j *DayEndJob) Run(ctx context.Context) (DayEndSummary, error) {
	day := kernel.DayOf(j.clock.Now().In(j.loc))
	summary := DayEndSummary{Day: day}

	query, err := queries.NewGetCourierBoxesQuery(day)
	if err != nil {
		return summary, err
	}
	rows, err := j.boxes.Handle(ctx, query)
	if err != nil {
		return summary, err
	}
	summary.Rows = len(rows)

	missing := services.MissingBoxCounts(rows)
	summary.MissingBoxes = len(missing)
	for _, m := range missing {
		j.logger.Warn("courier row has no box count",
			zap.String("customer", m.CustomerName),
			zap.String("courier", m.CourierName),
			zap.String("row_id", m.RowID))
	}

	pending, err := j.pending.Handle(ctx, queries.NewGetPendingFeedbackQuery())
	if err != nil {
		return summary, err
	}
	summary.PendingFeedback = len(pending)

	aggregates, err := j.day.ListByDate(ctx, day)
	if err != nil {
		return summary, err
	}
	for _, f := range aggregates {
		if f.DispatchConfirmedAt() == nil {
			summary.Undispatched++
		}
	}

	if summary.SheetPath, err = j.sheet.Write(ctx, day, rows); err != nil {
		return summary, err
	}

	j.logger.Info("day end completed",
		zap.String("day", day.Format(time.DateOnly)),
		zap.Int("rows", summary.Rows),
		zap.Int("missing_boxes", summary.MissingBoxes),
		zap.Int("pending_feedback", summary.PendingFeedback),
		zap.Int("undispatched", summary.Undispatched),
		zap.String("sheet", summary.SheetPath))
	return summary, nil
}

// Start schedules Run on the configured cron spec.
func (j *DayEndJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("day end job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("day end job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *DayEndJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("day end job stopped")
}
