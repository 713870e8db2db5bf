package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"
)

// DispatchSheetWriter exports the day-end courier list and returns where it
// was written.
type DispatchSheetWriter interface {
	Write(ctx context.Context, day time.Time, rows []services.CourierBoxRow) (string, error)
}
