package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// IssuedNumbersReader lists the invoice numbers issued on a day.
// ports.InvoiceRepository satisfies it.
type IssuedNumbersReader interface {
	ListNumbersByDate(ctx context.Context, day time.Time) ([]string, error)
}

// FindMissingInvoicesQueryHandler runs the day-end gap check. The day's
// issued numbers come from the cache when present; the database answers a
// miss and refills the cache unless the day was invalidated meanwhile.
// Cache failures only cost a database read.
type FindMissingInvoicesQueryHandler struct {
	issued   IssuedNumbersReader
	cache    ports.IssuedInvoiceCache
	detector services.MissingInvoiceDetector
	loc      *time.Location
	logger   *zap.Logger
}

// NewFindMissingInvoicesQueryHandler accepts a nil cache.
func NewFindMissingInvoicesQueryHandler(
	issued IssuedNumbersReader,
	cache ports.IssuedInvoiceCache,
	loc *time.Location,
	logger *zap.Logger,
) FindMissingInvoicesQueryHandler {
	return FindMissingInvoicesQueryHandler{
		issued:   issued,
		cache:    cache,
		detector: services.NewMissingInvoiceDetector(),
		loc:      locationOrUTC(loc),
		logger:   logger,
	}
}

func (h FindMissingInvoicesQueryHandler) Handle(
	ctx context.Context,
	query FindMissingInvoicesQuery,
) (FindMissingInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindMissingInvoicesQueryResponse{}, err
	}

	day := kernel.DayOf(query.Day().In(h.loc))
	issued, err := h.issuedNumbers(ctx, day)
	if err != nil {
		return FindMissingInvoicesQueryResponse{}, err
	}

	missing, err := h.detector.FindMissing(query.Start(), query.End(), issued)
	if err != nil {
		return FindMissingInvoicesQueryResponse{}, err
	}

	return FindMissingInvoicesQueryResponse{
		Day:     day,
		Start:   query.Start(),
		End:     query.End(),
		Issued:  len(issued),
		Missing: missing,
	}, nil
}

func (h FindMissingInvoicesQueryHandler) issuedNumbers(ctx context.Context, day time.Time) ([]string, error) {
	date := day.Format(time.DateOnly)

	// refill stays false when the generation is unknown.
	var (
		gen    int64
		refill bool
	)
	if h.cache != nil {
		numbers, g, ok, err := h.cache.Get(ctx, day)
		switch {
		case err != nil:
			h.logger.Warn("issued invoice cache read failed", zap.String("day", date), zap.Error(err))
		case ok:
			return numbers, nil
		default:
			gen, refill = g, true
		}
	}

	numbers, err := h.issued.ListNumbersByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	if refill {
		stored, err := h.cache.Set(ctx, day, gen, numbers)
		switch {
		case err != nil:
			h.logger.Warn("issued invoice cache write failed", zap.String("day", date), zap.Error(err))
		case !stored:
			h.logger.Debug("issued invoice cache refill skipped after invalidation",
				zap.String("day", date), zap.Int64("generation", gen))
		}
	}
	return numbers, nil
}
