package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCourierBoxesQueryIsNotConstructed = errors.New(
	"GetCourierBoxesQuery must be created via NewGetCourierBoxesQuery constructor",
)

// GetCourierBoxesQuery builds the courier list for one pack day.
type GetCourierBoxesQuery struct {
	day   time.Time
	guard guard.ConstructorGuard
}

func NewGetCourierBoxesQuery(day time.Time) (GetCourierBoxesQuery, error) {
	if day.IsZero() {
		return GetCourierBoxesQuery{}, errs.NewValueIsRequiredError("day")
	}
	return GetCourierBoxesQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierBoxesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBoxesQueryIsNotConstructed)
}

func (q GetCourierBoxesQuery) Day() time.Time { return q.day }
