package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")

// Key identifies a feedback aggregate: every invoice packed for one customer,
// shipped with one courier, on one day.
type Key struct {
	CustomerID  kernel.UUID
	Courier     kernel.Courier
	CourierDate time.Time
}

// NewKey normalizes courierDate to midnight.
func NewKey(customerID kernel.UUID, courier kernel.Courier, courierDate time.Time) (Key, error) {
	var dateErr error
	if courierDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("courier_date")
	}
	if err := errors.Join(customerID.Validate(), courier.Validate(), dateErr); err != nil {
		return Key{}, err
	}
	return Key{CustomerID: customerID, Courier: courier, CourierDate: kernel.DayOf(courierDate)}, nil
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.CustomerID, k.Courier, k.CourierDate.Format(time.DateOnly))
}

// Feedback is the reconciliation record for one Key. Packed invoices increment
// InvoiceCount; staff later enter the box count and weight and confirm whether
// the customer received the stock.
//
// Invariants:
//   - the key never changes
//   - stocksOK is Unset whenever stockReceived is No
//   - followUp is non-empty whenever stockReceived is No
//   - issueResolvedTime is set only when stockReceived and stocksOK are both Yes
//   - once dispatchConfirmedAt is set the box count is final
type Feedback struct {
	id                  kernel.UUID
	key                 Key
	customerName        string
	invoiceCount        int
	noOfBox             *int
	weight              *decimal.Decimal
	stockReceived       TriState
	stocksOK            TriState
	followUp            string
	feedbackTime        *time.Time
	issueResolvedTime   *time.Time
	dispatchConfirmedAt *time.Time
	isConstructed       bool
}

// NewFeedback creates an empty aggregate. The first AddInvoice brings the
// invoice count to one.
func NewFeedback(id kernel.UUID, key Key, customerName string) (*Feedback, error) {
	normalized, keyErr := NewKey(key.CustomerID, key.Courier, key.CourierDate)
	if err := errors.Join(id.Validate(), keyErr); err != nil {
		return nil, err
	}
	return &Feedback{
		id:            id,
		key:           normalized,
		customerName:  strings.TrimSpace(customerName),
		isConstructed: true,
	}, nil
}

func (f *Feedback) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeedbackIsNotConstructed
	}
	return nil
}

func (f *Feedback) ID() kernel.UUID                 { return f.id }
func (f *Feedback) Key() Key                        { return f.key }
func (f *Feedback) CustomerName() string            { return f.customerName }
func (f *Feedback) InvoiceCount() int               { return f.invoiceCount }
func (f *Feedback) NoOfBox() *int                   { return f.noOfBox }
func (f *Feedback) Weight() *decimal.Decimal        { return f.weight }
func (f *Feedback) StockReceived() TriState         { return f.stockReceived }
func (f *Feedback) StocksOK() TriState              { return f.stocksOK }
func (f *Feedback) FollowUp() string                { return f.followUp }
func (f *Feedback) FeedbackTime() *time.Time        { return f.feedbackTime }
func (f *Feedback) IssueResolvedTime() *time.Time   { return f.issueResolvedTime }
func (f *Feedback) DispatchConfirmedAt() *time.Time { return f.dispatchConfirmedAt }

// IsOpen reports whether the receipt issue is unresolved. Open rows make up
// the pending feedback list.
func (f *Feedback) IsOpen() bool {
	return f.issueResolvedTime == nil
}

// HasBoxCount reports whether a positive box count was entered.
func (f *Feedback) HasBoxCount() bool {
	return f.noOfBox != nil && *f.noOfBox > 0
}

// AddInvoice counts one more packed invoice into the aggregate.
func (f *Feedback) AddInvoice() {
	f.invoiceCount++
}

// SetBoxCount stores the operator's box count for the row. Zero clears a
// mistaken entry; negative counts are rejected. The count is frozen once the
// courier dispatch is confirmed.
func (f *Feedback) SetBoxCount(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("no_of_box", n, 0, "unbounded")
	}
	if f.dispatchConfirmedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("no_of_box",
			fmt.Errorf("dispatch for %s was confirmed at %s", f.key, f.dispatchConfirmedAt.Format(time.RFC3339)))
	}
	f.noOfBox = &n
	return nil
}

// SetWeight stores the total weight. Nil clears it.
func (f *Feedback) SetWeight(w *decimal.Decimal) error {
	if err := checkWeight(w); err != nil {
		return err
	}
	if w == nil {
		f.weight = nil
		return nil
	}
	cp := *w
	f.weight = &cp
	return nil
}

// checkWeight accepts nil or a non-negative weight with at most two decimals.
func checkWeight(w *decimal.Decimal) error {
	switch {
	case w == nil:
		return nil
	case w.IsNegative():
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", w))
	case !w.Equal(w.Truncate(2)):
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s has more than 2 decimal places", w))
	}
	return nil
}

// Confirmation is one submission of the feedback form. NoOfBox and Weight are
// optional and fall back to what is already stored.
type Confirmation struct {
	NoOfBox       *int
	Weight        *decimal.Decimal
	StockReceived TriState
	StocksOK      TriState
	FollowUp      string
}

// Confirm records the customer's receipt outcome.
//
// Algorithm:
//  1. the box count (submitted or stored) must be present and positive
//  2. StockReceived must be answered
//  3. received Yes requires StocksOK; received Yes and ok Yes resolves the issue
//  4. received No requires a follow-up note; StocksOK is cleared and the issue
//     stays open until a later confirmation resolves it
//
// A confirmation that does not resolve the issue reopens a previously
// resolved one. Nothing changes when an error is returned.
func (f *Feedback) Confirm(c Confirmation, now time.Time) error {
	boxes := f.noOfBox
	if c.NoOfBox != nil {
		boxes = c.NoOfBox
	}
	followUp := strings.TrimSpace(c.FollowUp)

	var errList []error
	switch {
	case boxes == nil:
		errList = append(errList, errs.NewValueIsRequiredError("no_of_box"))
	case *boxes <= 0:
		errList = append(errList, errs.NewValueIsOutOfRangeError("no_of_box", *boxes, 1, "unbounded"))
	case c.NoOfBox != nil && f.dispatchConfirmedAt != nil && (f.noOfBox == nil || *f.noOfBox != *boxes):
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("no_of_box",
			errors.New("dispatch already confirmed")))
	}
	errList = append(errList, checkWeight(c.Weight))

	switch c.StockReceived {
	case Yes:
		if !c.StocksOK.IsSet() {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("stocks_ok",
				errors.New("required when stock was received")))
		}
	case No:
		if followUp == "" {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("follow_up",
				errors.New("required when stock was not received")))
		}
	default:
		errList = append(errList, errs.NewValueIsRequiredError("stock_received"))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	n := *boxes
	f.noOfBox = &n
	if c.Weight != nil {
		w := *c.Weight
		f.weight = &w
	}
	f.stockReceived = c.StockReceived
	f.stocksOK = c.StocksOK
	if c.StockReceived == No {
		f.stocksOK = Unset
	}
	f.followUp = followUp
	f.feedbackTime = &now

	if f.stockReceived == Yes && f.stocksOK == Yes {
		if f.issueResolvedTime == nil {
			f.issueResolvedTime = &now
		}
	} else {
		f.issueResolvedTime = nil
	}
	return nil
}

func (f *Feedback) markDispatched(now time.Time) {
	if f.dispatchConfirmedAt == nil {
		f.dispatchConfirmedAt = &now
	}
}
