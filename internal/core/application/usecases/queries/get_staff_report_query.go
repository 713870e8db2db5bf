package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStaffReportQueryIsNotConstructed = errors.New(
		"GetStaffReportQuery must be created via NewGetStaffReportQuery constructor",
	)
	ErrGetStaffTimelineQueryIsNotConstructed = errors.New(
		"GetStaffTimelineQuery must be created via NewGetStaffTimelineQuery constructor",
	)
)

// GetStaffReportQuery asks for per-staff output on one day.
type GetStaffReportQuery struct {
	day   time.Time
	guard guard.ConstructorGuard
}

func NewGetStaffReportQuery(day time.Time) (GetStaffReportQuery, error) {
	if day.IsZero() {
		return GetStaffReportQuery{}, errs.NewValueIsRequiredError("day")
	}
	return GetStaffReportQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaffReportQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffReportQueryIsNotConstructed)
}

func (q GetStaffReportQuery) Day() time.Time { return q.day }

// GetStaffTimelineQuery asks for everything one staff member touched on a
// day.
type GetStaffTimelineQuery struct {
	username string
	day      time.Time
	guard    guard.ConstructorGuard
}

func NewGetStaffTimelineQuery(username string, day time.Time) (GetStaffTimelineQuery, error) {
	name := strings.TrimSpace(username)
	var nameErr, dayErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("username")
	}
	if day.IsZero() {
		dayErr = errs.NewValueIsRequiredError("day")
	}
	if err := errors.Join(nameErr, dayErr); err != nil {
		return GetStaffTimelineQuery{}, err
	}
	return GetStaffTimelineQuery{username: name, day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaffTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffTimelineQueryIsNotConstructed)
}

func (q GetStaffTimelineQuery) Username() string { return q.username }
func (q GetStaffTimelineQuery) Day() time.Time   { return q.day }
