package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("invoiceID", "8a1c")

		assert.Equal(t, "invoiceID", err.ParamName)
		assert.Equal(t, "8a1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 8a1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("invoiceID", "8a1c", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: invoiceID, ID is: 8a1c (cause: record not found)",
			err.Error())
	})

	t.Run("numeric id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("rowID", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("invoice_number")
		assert.Equal(t, "value is invalid: invoice_number", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

		withCause := errs.NewValueIsInvalidErrorWithCause("invoice_number", errors.New("duplicate"))
		assert.Equal(t, "value is invalid: invoice_number (cause: duplicate)", withCause.Error())
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("no_of_box", -1, 1, 999)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, "value is invalid: -1 is no_of_box, min value is 1, max value is 999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("out of range flattens newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("remarks", "two\nlines", 0, 10)
		assert.Contains(t, err.Error(), "two lines")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("customer_id", errors.New("empty"))
		assert.Equal(t, "value is required: customer_id (cause: empty)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestWorkflowErrors(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("TAKING", "PACKED")
		assert.Equal(t, "invalid transition: TAKING -> PACKED", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("not authorized", func(t *testing.T) {
		err := errs.NewNotAuthorizedError("bob", "mark taken")
		assert.Equal(t, "not authorized: bob cannot mark taken", err.Error())
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("workload exceeded", func(t *testing.T) {
		err := errs.NewWorkloadExceededError("alice", 2, 2)
		assert.Equal(t, "workload exceeded: alice has 2 active jobs, cap is 2", err.Error())
		require.ErrorIs(t, err, errs.ErrWorkloadExceeded)
	})

	t.Run("self verification", func(t *testing.T) {
		err := errs.NewSelfVerificationForbiddenError("alice", "inv-1")
		assert.Equal(t, "self verification forbidden: alice took invoice inv-1", err.Error())
		require.ErrorIs(t, err, errs.ErrSelfVerificationForbidden)
	})

	t.Run("conflict", func(t *testing.T) {
		err := errs.NewConflictError("invoice", "inv-1")
		assert.Equal(t, "conflict: invoice inv-1 was modified concurrently", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestDayEndErrors(t *testing.T) {
	t.Run("range invalid", func(t *testing.T) {
		err := errs.NewRangeInvalidErrorWithCause("SA000010", "SA000001", errors.New("end is before start"))
		assert.Equal(t, "range is invalid: SA000010..SA000001 (cause: end is before start)", err.Error())
		require.ErrorIs(t, err, errs.ErrRangeInvalid)
	})

	t.Run("incomplete box counts lists every row", func(t *testing.T) {
		err := errs.NewIncompleteBoxCountsError([]errs.MissingBoxCount{
			{RowID: "1", CustomerID: "c1", CustomerName: "Acme Pharma", CourierName: "ST"},
			{RowID: "2", CustomerID: "c2", CourierName: "DTDC"},
		})
		assert.Equal(t, "incomplete box counts: 2 rows missing box count [Acme Pharma/ST, c2/DTDC]", err.Error())
		require.ErrorIs(t, err, errs.ErrIncompleteBoxCounts)
	})
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"required", errs.NewValueIsRequiredError("x"), true},
		{"invalid", errs.NewValueIsInvalidError("x"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 0, 1, 2), true},
		{"wrapped", fmt.Errorf("create: %w", errs.NewValueIsInvalidError("x")), true},
		{"joined", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsRequiredError("b")), true},
		{"conflict", errs.NewConflictError("invoice", 1), false},
		{"not found", errs.NewObjectNotFoundError("invoice", 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.IsValidation(tt.err))
		})
	}
}

func TestErrorsAsExtractsDetails(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", errs.NewIncompleteBoxCountsError([]errs.MissingBoxCount{{RowID: "7"}}))

	var target *errs.IncompleteBoxCountsError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "7", target.Missing[0].RowID)
}
