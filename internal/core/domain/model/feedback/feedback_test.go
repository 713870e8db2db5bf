package feedback_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	today = kernel.DayOf(now)
)

func intPtr(n int) *int { return &n }

func newFeedback(t *testing.T, courier kernel.Courier, name string) *feedback.Feedback {
	t.Helper()
	key, err := feedback.NewKey(kernel.NewUUID(), courier, now)
	require.NoError(t, err)
	f, err := feedback.NewFeedback(kernel.NewUUID(), key, name)
	require.NoError(t, err)
	return f
}

func TestNewKey(t *testing.T) {
	key, err := feedback.NewKey(kernel.NewUUID(), kernel.CourierST, now)
	require.NoError(t, err)
	assert.Equal(t, today, key.CourierDate)

	_, err = feedback.NewKey(kernel.UUID{}, "", time.Time{})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestFeedback_AddInvoice(t *testing.T) {
	f := newFeedback(t, kernel.CourierST, "Apollo")
	assert.Equal(t, 0, f.InvoiceCount())

	f.AddInvoice()
	f.AddInvoice()

	assert.Equal(t, 2, f.InvoiceCount())
	assert.True(t, f.IsOpen())
}

func TestFeedback_Confirm(t *testing.T) {
	t.Run("missing box count", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		err := f.Confirm(feedback.Confirmation{StockReceived: feedback.Yes, StocksOK: feedback.Yes}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, f.FeedbackTime())
	})

	t.Run("non-positive box count", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		err := f.Confirm(feedback.Confirmation{NoOfBox: intPtr(0), StockReceived: feedback.Yes, StocksOK: feedback.Yes}, now)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("stock received unset", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		err := f.Confirm(feedback.Confirmation{NoOfBox: intPtr(2)}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "stock_received")
	})

	t.Run("received requires stocks ok", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		err := f.Confirm(feedback.Confirmation{NoOfBox: intPtr(2), StockReceived: feedback.Yes}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "stocks_ok")
	})

	t.Run("received and ok resolves", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		w := decimal.RequireFromString("12.5")

		err := f.Confirm(feedback.Confirmation{
			NoOfBox: intPtr(3), Weight: &w, StockReceived: feedback.Yes, StocksOK: feedback.Yes,
		}, now)

		require.NoError(t, err)
		assert.False(t, f.IsOpen())
		assert.Equal(t, now, *f.IssueResolvedTime())
		assert.Equal(t, 3, *f.NoOfBox())
		assert.True(t, f.Weight().Equal(w))
	})

	t.Run("received but not ok stays open", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		err := f.Confirm(feedback.Confirmation{NoOfBox: intPtr(3), StockReceived: feedback.Yes, StocksOK: feedback.No}, now)
		require.NoError(t, err)
		assert.True(t, f.IsOpen())
	})

	t.Run("not received needs follow up", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		require.NoError(t, f.SetBoxCount(2))

		err := f.Confirm(feedback.Confirmation{StockReceived: feedback.No, FollowUp: "  "}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.True(t, errs.IsValidation(err))

		err = f.Confirm(feedback.Confirmation{StockReceived: feedback.No, StocksOK: feedback.Yes, FollowUp: "damaged box"}, now)
		require.NoError(t, err)
		assert.Nil(t, f.IssueResolvedTime())
		assert.Equal(t, feedback.Unset, f.StocksOK())
		assert.Equal(t, "damaged box", f.FollowUp())
		assert.Equal(t, 2, *f.NoOfBox())
	})

	t.Run("later confirmation resolves, a regression reopens", func(t *testing.T) {
		f := newFeedback(t, kernel.CourierST, "Apollo")
		require.NoError(t, f.SetBoxCount(1))
		require.NoError(t, f.Confirm(feedback.Confirmation{StockReceived: feedback.No, FollowUp: "short"}, now))

		later := now.Add(24 * time.Hour)
		require.NoError(t, f.Confirm(feedback.Confirmation{StockReceived: feedback.Yes, StocksOK: feedback.Yes}, later))
		assert.Equal(t, later, *f.IssueResolvedTime())

		require.NoError(t, f.Confirm(feedback.Confirmation{StockReceived: feedback.No, FollowUp: "recount"}, later))
		assert.True(t, f.IsOpen())
	})
}

func TestFeedback_SetBoxCount(t *testing.T) {
	f := newFeedback(t, kernel.CourierST, "Apollo")

	require.ErrorIs(t, f.SetBoxCount(-1), errs.ErrValueIsOutOfRange)
	require.NoError(t, f.SetBoxCount(0))
	assert.False(t, f.HasBoxCount())
	require.NoError(t, f.SetBoxCount(4))
	require.NoError(t, f.SetBoxCount(4))
	assert.True(t, f.HasBoxCount())
}

func TestFeedback_SetWeight(t *testing.T) {
	f := newFeedback(t, kernel.CourierST, "Apollo")

	w := decimal.RequireFromString("12.345")
	require.ErrorIs(t, f.SetWeight(&w), errs.ErrValueIsInvalid)
	assert.Nil(t, f.Weight())

	neg := decimal.RequireFromString("-1")
	require.ErrorIs(t, f.SetWeight(&neg), errs.ErrValueIsInvalid)

	ok := decimal.RequireFromString("12.30")
	require.NoError(t, f.SetWeight(&ok))
	assert.True(t, f.Weight().Equal(ok))

	require.NoError(t, f.SetWeight(nil))
	assert.Nil(t, f.Weight())

	require.ErrorIs(t, f.Confirm(feedback.Confirmation{
		NoOfBox: intPtr(2), Weight: &w, StockReceived: feedback.Yes, StocksOK: feedback.Yes,
	}, now), errs.ErrValueIsInvalid)
	assert.Nil(t, f.FeedbackTime())
}

func TestConfirmDispatch(t *testing.T) {
	t.Run("all rows counted", func(t *testing.T) {
		a := newFeedback(t, kernel.CourierST, "Apollo")
		b := newFeedback(t, kernel.CourierProfessional, "MedPlus")
		require.NoError(t, a.SetBoxCount(2))
		require.NoError(t, b.SetBoxCount(1))

		require.NoError(t, feedback.ConfirmDispatch([]*feedback.Feedback{a, b}, now, now))

		assert.Equal(t, now, *a.DispatchConfirmedAt())
		assert.Equal(t, now, *b.DispatchConfirmedAt())
		require.Error(t, a.SetBoxCount(5))
	})

	t.Run("one row without boxes fails the batch", func(t *testing.T) {
		a := newFeedback(t, kernel.CourierST, "Apollo")
		b := newFeedback(t, kernel.CourierST, "MedPlus")
		c := newFeedback(t, kernel.CourierProfessional, "Wellness")
		require.NoError(t, a.SetBoxCount(2))
		require.NoError(t, b.SetBoxCount(0))
		require.NoError(t, c.SetBoxCount(3))

		err := feedback.ConfirmDispatch([]*feedback.Feedback{a, b, c}, now, now)

		var incomplete *errs.IncompleteBoxCountsError
		require.ErrorAs(t, err, &incomplete)
		require.Len(t, incomplete.Missing, 1)
		assert.Equal(t, b.ID().String(), incomplete.Missing[0].RowID)
		assert.Equal(t, "MedPlus", incomplete.Missing[0].CustomerName)
		assert.Equal(t, "ST", incomplete.Missing[0].CourierName)
		for _, row := range []*feedback.Feedback{a, b, c} {
			assert.Nil(t, row.DispatchConfirmedAt())
		}
	})

	t.Run("row from another day", func(t *testing.T) {
		a := newFeedback(t, kernel.CourierST, "Apollo")
		require.NoError(t, a.SetBoxCount(2))

		err := feedback.ConfirmDispatch([]*feedback.Feedback{a}, now.Add(24*time.Hour), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, a.DispatchConfirmedAt())
	})

	t.Run("local courier has no dispatch", func(t *testing.T) {
		a := newFeedback(t, kernel.CourierLocal, "Apollo")
		require.NoError(t, a.SetBoxCount(2))

		err := feedback.ConfirmDispatch([]*feedback.Feedback{a}, now, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty batch", func(t *testing.T) {
		require.ErrorIs(t, feedback.ConfirmDispatch(nil, now, now), errs.ErrValueIsRequired)
	})

	t.Run("reconfirm keeps first time", func(t *testing.T) {
		a := newFeedback(t, kernel.CourierST, "Apollo")
		require.NoError(t, a.SetBoxCount(2))
		require.NoError(t, feedback.ConfirmDispatch([]*feedback.Feedback{a}, now, now))
		require.NoError(t, feedback.ConfirmDispatch([]*feedback.Feedback{a}, now, now.Add(time.Hour)))
		assert.Equal(t, now, *a.DispatchConfirmedAt())
	})
}

func TestParseTriState(t *testing.T) {
	for in, want := range map[string]feedback.TriState{"": feedback.Unset, "YES": feedback.Yes, "no": feedback.No, "true": feedback.Yes} {
		got, err := feedback.ParseTriState(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := feedback.ParseTriState("maybe")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Nil(t, feedback.Unset.Bool())
	assert.Equal(t, feedback.No, feedback.TriStateFromBool(feedback.No.Bool()))
}

func TestRestoreFeedback(t *testing.T) {
	key, err := feedback.NewKey(kernel.NewUUID(), kernel.CourierST, now)
	require.NoError(t, err)

	f, err := feedback.RestoreFeedback(feedback.Snapshot{
		ID:            kernel.NewUUID(),
		Key:           key,
		CustomerName:  "Apollo",
		InvoiceCount:  3,
		NoOfBox:       intPtr(2),
		StockReceived: feedback.No,
		StocksOK:      feedback.Yes,
		FollowUp:      "missing strip",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, f.InvoiceCount())
	assert.Equal(t, feedback.Unset, f.StocksOK())
	assert.True(t, f.IsOpen())
}
