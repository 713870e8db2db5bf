package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// invalidateIssued drops the cached issued numbers of each distinct day.
func invalidateIssued(ctx context.Context, cache ports.IssuedInvoiceCache, logger *zap.Logger, days ...time.Time) {
	if cache == nil {
		return
	}
	seen := make(map[string]struct{}, len(days))
	for _, day := range days {
		date := day.Format(time.DateOnly)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}

		if err := cache.Invalidate(ctx, day); err != nil {
			logger.Warn("issued invoice cache invalidation failed",
				zap.String("day", date),
				zap.Error(err),
			)
		}
	}
}
