package feedback

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Snapshot is the persisted state of a feedback aggregate.
type Snapshot struct {
	ID                  kernel.UUID
	Key                 Key
	CustomerName        string
	InvoiceCount        int
	NoOfBox             *int
	Weight              *decimal.Decimal
	StockReceived       TriState
	StocksOK            TriState
	FollowUp            string
	FeedbackTime        *time.Time
	IssueResolvedTime   *time.Time
	DispatchConfirmedAt *time.Time
}

// RestoreFeedback rebuilds a stored aggregate. Rows written before the
// stocks_ok rule existed may carry a stocks_ok answer next to received = No;
// that answer is dropped rather than rejected.
func RestoreFeedback(s Snapshot) (*Feedback, error) {
	f, err := NewFeedback(s.ID, s.Key, s.CustomerName)
	if err != nil {
		return nil, err
	}
	var countErr error
	if s.InvoiceCount < 0 {
		countErr = errs.NewValueIsOutOfRangeError("invoice_count", s.InvoiceCount, 0, "unbounded")
	}
	if err = errors.Join(countErr, f.SetWeight(s.Weight)); err != nil {
		return nil, err
	}

	f.invoiceCount = s.InvoiceCount
	f.noOfBox = s.NoOfBox
	f.stockReceived = s.StockReceived
	f.stocksOK = s.StocksOK
	if s.StockReceived == No {
		f.stocksOK = Unset
	}
	f.followUp = s.FollowUp
	f.feedbackTime = s.FeedbackTime
	f.issueResolvedTime = s.IssueResolvedTime
	f.dispatchConfirmedAt = s.DispatchConfirmedAt
	return f, nil
}
