package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmCourierDispatchCommandIsNotConstructed = errors.New(
	"ConfirmCourierDispatchCommand must be created via NewConfirmCourierDispatchCommand constructor",
)

// ConfirmCourierDispatchCommand finalizes the box counts of the given
// courier aggregate rows for courierDate. Duplicate ids are collapsed.
type ConfirmCourierDispatchCommand struct { //nolint:recvcheck //using for validation
	rowIDs      []kernel.UUID
	courierDate time.Time

	guard guard.ConstructorGuard
}

func NewConfirmCourierDispatchCommand(
	rowIDs []kernel.UUID,
	courierDate time.Time,
) (ConfirmCourierDispatchCommand, error) {
	c := ConfirmCourierDispatchCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		c.setRowIDs(rowIDs),
		c.setCourierDate(courierDate),
	); err != nil {
		return ConfirmCourierDispatchCommand{}, err
	}
	return c, nil
}

func (c ConfirmCourierDispatchCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCourierDispatchCommandIsNotConstructed)
}

func (c ConfirmCourierDispatchCommand) RowIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.rowIDs))
	copy(out, c.rowIDs)
	return out
}

func (c ConfirmCourierDispatchCommand) CourierDate() time.Time {
	return c.courierDate
}

func (c *ConfirmCourierDispatchCommand) setRowIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("row_ids")
	}
	seen := make(map[string]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("row_ids", err)
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		unique = append(unique, id)
	}
	c.rowIDs = unique
	return nil
}

func (c *ConfirmCourierDispatchCommand) setCourierDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("courier_date")
	}
	c.courierDate = kernel.DayOf(d)
	return nil
}
