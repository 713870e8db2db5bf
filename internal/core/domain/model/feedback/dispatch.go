package feedback

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ConfirmDispatch finalizes the box counts of a courier pickup. It is all or
// nothing: every row must belong to courierDate, ship with a dispatchable
// courier and carry a positive box count, otherwise no row is touched.
//
// Rows without a box count are reported together in an IncompleteBoxCounts
// error naming each customer and courier. Rows already confirmed keep their
// original confirmation time.
func ConfirmDispatch(rows []*Feedback, courierDate time.Time, now time.Time) error {
	if len(rows) == 0 {
		return errs.NewValueIsRequiredError("row_ids")
	}
	if courierDate.IsZero() {
		return errs.NewValueIsRequiredError("courier_date")
	}
	day := kernel.DayOf(courierDate)

	var (
		errList []error
		missing []errs.MissingBoxCount
	)
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return err
		}
		if !row.key.CourierDate.Equal(day) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("courier_date",
				fmt.Errorf("row %s is dated %s, not %s", row.id,
					row.key.CourierDate.Format(time.DateOnly), day.Format(time.DateOnly))))
			continue
		}
		if !row.key.Courier.IsDispatchable() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("courier_name",
				fmt.Errorf("row %s ships %s, which has no courier dispatch", row.id, row.key.Courier)))
			continue
		}
		if !row.HasBoxCount() {
			missing = append(missing, errs.MissingBoxCount{
				RowID:        row.id.String(),
				CustomerID:   row.key.CustomerID.String(),
				CustomerName: row.customerName,
				CourierName:  row.key.Courier.String(),
			})
		}
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}
	if len(missing) > 0 {
		return errs.NewIncompleteBoxCountsError(missing)
	}

	for _, row := range rows {
		row.markDispatched(now)
	}
	return nil
}
