package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStaffJobsQueryIsNotConstructed = errors.New(
	"GetStaffJobsQuery must be created via NewGetStaffJobsQuery constructor",
)

// GetStaffJobsQuery collects the three work lists a staff member sees: the
// jobs they own, the bills waiting to be taken, and the bills they may verify.
type GetStaffJobsQuery struct {
	username string
	guard    guard.ConstructorGuard
}

func NewGetStaffJobsQuery(username string) (GetStaffJobsQuery, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return GetStaffJobsQuery{}, errs.NewValueIsRequiredError("username")
	}
	return GetStaffJobsQuery{username: name, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaffJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffJobsQueryIsNotConstructed)
}

func (q GetStaffJobsQuery) Username() string { return q.username }

// GetStaffJobsQueryResponse groups the lists. BillsToVerify never contains an
// invoice the user took.
type GetStaffJobsQueryResponse struct {
	MyJobs        []InvoiceView
	BillsToTake   []InvoiceView
	BillsToVerify []InvoiceView
}
