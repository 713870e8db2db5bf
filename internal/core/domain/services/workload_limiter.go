package services

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// DefaultWorkloadCap is the number of invoices one staff member may hold in
// TAKING or VERIFYING at the same time.
const DefaultWorkloadCap = 2

// WorkloadLimiter gates the two transitions that take a workload slot:
// StartTaking and StartVerify (including the admin override, where the cap
// applies to the assignee). Completing a job is never limited.
//
// The active count passed in must come from the same transaction that will
// write the transition; the limiter itself holds no state, so it is safe to
// share between goroutines.
//
// Example usage:
//
//	limiter := services.NewWorkloadLimiter()
//	active, err := uow.InvoiceRepository().CountActiveJobs(ctx, actor.Username())
//	if err != nil {
//	    return err
//	}
//	if err = limiter.StartTaking(inv, actor, active, now); err != nil {
//	    return err // WorkloadExceeded, InvalidTransition or NotAuthorized
//	}
type WorkloadLimiter struct {
	limit int
}

// NewWorkloadLimiter returns a limiter enforcing DefaultWorkloadCap.
func NewWorkloadLimiter() WorkloadLimiter {
	return WorkloadLimiter{limit: DefaultWorkloadCap}
}

// Cap returns the enforced limit.
func (l WorkloadLimiter) Cap() int {
	if l.limit <= 0 {
		return DefaultWorkloadCap
	}
	return l.limit
}

// Admit fails with WorkloadExceeded when one more job would push the owner
// past the cap.
func (l WorkloadLimiter) Admit(owner string, active int) error {
	if active+1 > l.Cap() {
		return errs.NewWorkloadExceededError(owner, active, l.Cap())
	}
	return nil
}

// StartTaking checks the transition, then the actor's workload, then applies
// ToTake -> Taking. Nothing changes on error.
func (l WorkloadLimiter) StartTaking(inv *invoice.Invoice, actor kernel.Actor, active int, now time.Time) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if _, err := inv.Status().StartTaking(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		if err := l.Admit(actor.Username(), active); err != nil {
			return err
		}
	}
	return inv.StartTaking(actor, now)
}

// StartVerify checks the transition, then the actor's workload, then applies
// ToVerify -> Verifying with the segregation-of-duty check.
func (l WorkloadLimiter) StartVerify(inv *invoice.Invoice, actor kernel.Actor, active int, now time.Time) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if _, err := inv.Status().StartVerify(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		if err := l.Admit(actor.Username(), active); err != nil {
			return err
		}
	}
	return inv.StartVerify(actor, now)
}

// OverrideStartVerify applies the admin override with the cap counted against
// the assignee.
func (l WorkloadLimiter) OverrideStartVerify(
	inv *invoice.Invoice,
	admin, assignee kernel.Actor,
	assigneeActive int,
	now time.Time,
) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return errs.NewNotAuthorizedError(admin.Username(), "override verification")
	}
	if _, err := inv.Status().StartVerify(); err != nil {
		return err
	}
	if err := l.Admit(assignee.Username(), assigneeActive); err != nil {
		return err
	}
	return inv.OverrideStartVerify(admin, assignee, now)
}
