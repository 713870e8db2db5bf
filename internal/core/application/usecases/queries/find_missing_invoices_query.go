package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFindMissingInvoicesQueryIsNotConstructed = errors.New(
	"FindMissingInvoicesQuery must be created via NewFindMissingInvoicesQuery constructor",
)

// FindMissingInvoicesQuery asks which numbers in [Start, End] were not billed
// on Day.
type FindMissingInvoicesQuery struct {
	day   time.Time
	start string
	end   string
	guard guard.ConstructorGuard
}

// NewFindMissingInvoicesQuery trims the range bounds. Their format is checked
// by the detector, which reports RangeInvalid.
func NewFindMissingInvoicesQuery(day time.Time, start, end string) (FindMissingInvoicesQuery, error) {
	if day.IsZero() {
		return FindMissingInvoicesQuery{}, errs.NewValueIsRequiredError("day")
	}
	return FindMissingInvoicesQuery{
		day:   day,
		start: strings.TrimSpace(start),
		end:   strings.TrimSpace(end),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q FindMissingInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrFindMissingInvoicesQueryIsNotConstructed)
}

func (q FindMissingInvoicesQuery) Day() time.Time { return q.day }
func (q FindMissingInvoicesQuery) Start() string  { return q.start }
func (q FindMissingInvoicesQuery) End() string    { return q.end }

// FindMissingInvoicesQueryResponse lists the gaps in ascending order.
type FindMissingInvoicesQueryResponse struct {
	Day     time.Time
	Start   string
	End     string
	Issued  int
	Missing []string
}
