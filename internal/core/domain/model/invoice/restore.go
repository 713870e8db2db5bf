package invoice

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Snapshot is the persisted state of an invoice.
type Snapshot struct {
	ID               kernel.UUID
	Number           kernel.InvoiceNumber
	InvoiceDate      time.Time
	Customer         CustomerRef
	RepName          string
	Courier          kernel.Courier
	NoOfProducts     int
	Value            *decimal.Decimal
	Status           Status
	CreatedBy        string
	CreatedAt        time.Time
	TakenBy          string
	TakeStartedAt    *time.Time
	TakeCompletedAt  *time.Time
	PackedBy         string
	VerifyStartedAt  *time.Time
	PackCompletedAt  *time.Time
	VerifyOverridden bool
}

// RestoreInvoice rebuilds an aggregate from storage. It re-checks field rules
// and the ownership invariants of the status: a row that claims Taking without
// a taker, or a verifier equal to the taker without an override, is rejected.
func RestoreInvoice(s Snapshot) (*Invoice, error) {
	inv := &Invoice{
		repName:          s.RepName,
		createdAt:        s.CreatedAt,
		takenBy:          s.TakenBy,
		takeStartedAt:    s.TakeStartedAt,
		takeCompletedAt:  s.TakeCompletedAt,
		packedBy:         s.PackedBy,
		verifyStartedAt:  s.VerifyStartedAt,
		packCompletedAt:  s.PackCompletedAt,
		verifyOverridden: s.VerifyOverridden,
		isConstructed:    true,
	}

	if err := errors.Join(
		inv.setID(s.ID),
		inv.setNumber(s.Number),
		inv.setInvoiceDate(s.InvoiceDate),
		inv.setCustomer(s.Customer),
		inv.setCourier(s.Courier),
		inv.setNoOfProducts(s.NoOfProducts),
		inv.setValue(s.Value),
		inv.setCreatedBy(s.CreatedBy),
		inv.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

func (i *Invoice) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s >= Taking && i.takenBy == "" {
		return errs.NewValueIsRequiredErrorWithCause("taken_by", fmt.Errorf("status %s requires a taker", s))
	}
	if s >= Verifying && i.packedBy == "" {
		return errs.NewValueIsRequiredErrorWithCause("packed_by", fmt.Errorf("status %s requires a verifier", s))
	}
	if i.packedBy != "" && i.packedBy == i.takenBy && !i.verifyOverridden {
		return errs.NewValueIsInvalidErrorWithCause("packed_by",
			fmt.Errorf("%s both took and verified without an override", i.packedBy))
	}
	i.status = s
	return nil
}
