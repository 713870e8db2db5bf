package ports

import (
	"context"
	"time"
)

// IssuedInvoiceCache memoizes the invoice numbers issued on a day for the
// day-end missing-invoice check, which is re-run on every keystroke of the
// range inputs. Creating or renumbering an invoice invalidates its day.
//
// Every day carries a generation that Invalidate advances. A reader that
// missed passes the generation it saw to Set, and Set stores nothing once the
// generation has moved, so a list read from the database before a concurrent
// invalidation can never overwrite it.
type IssuedInvoiceCache interface {
	// Get returns the cached numbers, or ok = false on a miss. gen is the
	// day's current generation in both cases.
	Get(ctx context.Context, day time.Time) (numbers []string, gen int64, ok bool, err error)

	// Set stores numbers if the day's generation still equals gen. stored
	// reports whether it did.
	Set(ctx context.Context, day time.Time, gen int64, numbers []string) (stored bool, err error)

	Invalidate(ctx context.Context, day time.Time) error
}
