package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not created
	// through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")
)

// CustomerRef is the customer snapshot copied onto an invoice at billing time.
// It is a copy, not a live reference: renaming a customer later does not rewrite
// history.
type CustomerRef struct {
	ID   kernel.UUID
	Name string
}

func (c CustomerRef) validate() error {
	if err := c.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	if strings.TrimSpace(c.Name) == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	return nil
}

// Draft carries the billing data needed to create an invoice.
type Draft struct {
	Number       kernel.InvoiceNumber
	InvoiceDate  time.Time
	Customer     CustomerRef
	RepName      string
	Courier      kernel.Courier
	NoOfProducts int
	Value        *decimal.Decimal
	CreatedBy    string
}

// Invoice is the aggregate root of the fulfillment workflow. It moves through
// the Status state machine, records who took and who verified it, and enforces
// the ownership and segregation-of-duty rules of every transition.
//
// Invariants:
//   - number is a canonical SA0xxxxx value and changes only through an admin Edit
//   - takenBy is set by StartTaking and never cleared
//   - packedBy is set by StartVerify or OverrideStartVerify and never cleared
//   - takenBy equals packedBy only when verifyOverridden is true
//   - noOfProducts > 0, value (when present) >= 0
//
// Workload limiting spans many invoices and is enforced by the caller through
// services.WorkloadLimiter before StartTaking/StartVerify.
type Invoice struct {
	id           kernel.UUID
	number       kernel.InvoiceNumber
	invoiceDate  time.Time
	customer     CustomerRef
	repName      string
	courier      kernel.Courier
	noOfProducts int
	value        *decimal.Decimal
	status       Status
	createdBy    string
	createdAt    time.Time

	takenBy         string
	takeStartedAt   *time.Time
	takeCompletedAt *time.Time

	packedBy         string
	verifyStartedAt  *time.Time
	packCompletedAt  *time.Time
	verifyOverridden bool

	isConstructed bool
}

// NewInvoice creates an invoice in ToTake status.
//
// Returns:
//   - *Invoice: the new aggregate
//   - error: every field problem joined together (see errs.IsValidation)
//
// Example:
//
//	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.Draft{
//	    Number:       kernel.MustInvoiceNumber("SA000123"),
//	    InvoiceDate:  now,
//	    Customer:     invoice.CustomerRef{ID: customerID, Name: "Apollo Pharmacy"},
//	    Courier:      kernel.CourierST,
//	    NoOfProducts: 12,
//	    CreatedBy:    "meena",
//	}, now)
func NewInvoice(id kernel.UUID, d Draft, now time.Time) (*Invoice, error) {
	inv := &Invoice{
		status:        ToTake,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setNumber(d.Number),
		inv.setInvoiceDate(d.InvoiceDate),
		inv.setCustomer(d.Customer),
		inv.setCourier(d.Courier),
		inv.setNoOfProducts(d.NoOfProducts),
		inv.setValue(d.Value),
		inv.setCreatedBy(d.CreatedBy),
	); err != nil {
		return nil, err
	}
	inv.repName = strings.TrimSpace(d.RepName)

	return inv, nil
}

// Validate ensures the Invoice was built by NewInvoice or RestoreInvoice.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Invoice) ID() kernel.UUID              { return i.id }
func (i *Invoice) Number() kernel.InvoiceNumber { return i.number }
func (i *Invoice) InvoiceDate() time.Time       { return i.invoiceDate }
func (i *Invoice) Customer() CustomerRef        { return i.customer }
func (i *Invoice) RepName() string              { return i.repName }
func (i *Invoice) Courier() kernel.Courier      { return i.courier }
func (i *Invoice) NoOfProducts() int            { return i.noOfProducts }
func (i *Invoice) Value() *decimal.Decimal      { return i.value }
func (i *Invoice) Status() Status               { return i.status }
func (i *Invoice) CreatedBy() string            { return i.createdBy }
func (i *Invoice) CreatedAt() time.Time         { return i.createdAt }
func (i *Invoice) TakenBy() string              { return i.takenBy }
func (i *Invoice) TakeStartedAt() *time.Time    { return i.takeStartedAt }
func (i *Invoice) TakeCompletedAt() *time.Time  { return i.takeCompletedAt }
func (i *Invoice) PackedBy() string             { return i.packedBy }
func (i *Invoice) VerifyStartedAt() *time.Time  { return i.verifyStartedAt }
func (i *Invoice) PackCompletedAt() *time.Time  { return i.packCompletedAt }
func (i *Invoice) VerifyOverridden() bool       { return i.verifyOverridden }

// ActiveOwner returns the username holding a workload slot for this invoice:
// the taker while Taking, the verifier while Verifying.
func (i *Invoice) ActiveOwner() (string, bool) {
	switch i.status {
	case Taking:
		return i.takenBy, true
	case Verifying:
		return i.packedBy, true
	default:
		return "", false
	}
}

// StartTaking moves the invoice ToTake -> Taking and records actor as the taker.
//
// Business rules:
//   - admins never originate jobs (NotAuthorized)
//   - the invoice must be in ToTake (InvalidTransition)
//
// The caller is responsible for checking the actor's workload beforehand.
func (i *Invoice) StartTaking(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return errs.NewNotAuthorizedError(actor.Username(), "start taking")
	}

	next, err := i.status.StartTaking()
	if err != nil {
		return err
	}

	i.status = next
	i.takenBy = actor.Username()
	i.takeStartedAt = &now
	return nil
}

// MarkTaken moves the invoice Taking -> ToVerify. Only the taker or an admin
// may complete the pick.
func (i *Invoice) MarkTaken(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := i.status.MarkTaken()
	if err != nil {
		return err
	}
	if !actor.Is(i.takenBy) && !actor.IsAdmin() {
		return errs.NewNotAuthorizedErrorWithCause(actor.Username(), "mark taken",
			fmt.Errorf("invoice %s is taken by %s", i.number, i.takenBy))
	}

	i.status = next
	i.takeCompletedAt = &now
	return nil
}

// StartVerify moves the invoice ToVerify -> Verifying and records actor as the
// verifier.
//
// Business rules:
//   - admins never originate jobs; they use OverrideStartVerify (NotAuthorized)
//   - the invoice must be in ToVerify (InvalidTransition)
//   - the taker may not verify their own pick (SelfVerificationForbidden)
func (i *Invoice) StartVerify(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return errs.NewNotAuthorizedError(actor.Username(), "start verify")
	}

	next, err := i.status.StartVerify()
	if err != nil {
		return err
	}
	if actor.Is(i.takenBy) {
		return errs.NewSelfVerificationForbiddenError(actor.Username(), i.id.String())
	}

	i.status = next
	i.packedBy = actor.Username()
	i.verifyStartedAt = &now
	return nil
}

// OverrideStartVerify is the admin-only variant of StartVerify. The admin
// assigns verification to assignee, skipping the segregation-of-duty check.
// The invoice is flagged so the taker == verifier case stays explainable; the
// caller records an audit event and applies the workload cap to assignee.
func (i *Invoice) OverrideStartVerify(admin, assignee kernel.Actor, now time.Time) error {
	if err := errors.Join(admin.Validate(), assignee.Validate()); err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return errs.NewNotAuthorizedError(admin.Username(), "override verification")
	}
	if assignee.IsAdmin() {
		return errs.NewValueIsInvalidErrorWithCause("assignee",
			fmt.Errorf("%s is an admin and cannot own a job", assignee.Username()))
	}

	next, err := i.status.StartVerify()
	if err != nil {
		return err
	}

	i.status = next
	i.packedBy = assignee.Username()
	i.verifyStartedAt = &now
	i.verifyOverridden = assignee.Is(i.takenBy)
	return nil
}

// MarkPacked moves the invoice Verifying -> Packed. Only the verifier or an
// admin may complete packing. The caller adds the invoice to its feedback
// aggregate in the same unit of work.
func (i *Invoice) MarkPacked(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := i.status.MarkPacked()
	if err != nil {
		return err
	}
	if !actor.Is(i.packedBy) && !actor.IsAdmin() {
		return errs.NewNotAuthorizedErrorWithCause(actor.Username(), "mark packed",
			fmt.Errorf("invoice %s is verified by %s", i.number, i.packedBy))
	}

	i.status = next
	i.packCompletedAt = &now
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setNumber(n kernel.InvoiceNumber) error {
	if err := n.Validate(); err != nil {
		return err
	}
	i.number = n
	return nil
}

func (i *Invoice) setInvoiceDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("invoice_date")
	}
	i.invoiceDate = kernel.DayOf(d)
	return nil
}

func (i *Invoice) setCustomer(c CustomerRef) error {
	if err := c.validate(); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(c.Name)
	i.customer = c
	return nil
}

func (i *Invoice) setCourier(c kernel.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	i.courier = c
	return nil
}

func (i *Invoice) setNoOfProducts(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("no_of_products", fmt.Errorf("%d is not greater than 0", n))
	}
	i.noOfProducts = n
	return nil
}

func (i *Invoice) setValue(v *decimal.Decimal) error {
	if v != nil && v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("invoice_value", fmt.Errorf("%s is negative", v))
	}
	if v != nil && !v.Equal(v.Truncate(2)) {
		return errs.NewValueIsInvalidErrorWithCause("invoice_value", fmt.Errorf("%s has more than 2 decimal places", v))
	}
	if v != nil {
		cp := *v
		i.value = &cp
		return nil
	}
	i.value = nil
	return nil
}

func (i *Invoice) setCreatedBy(username string) error {
	name := strings.TrimSpace(username)
	if name == "" {
		return errs.NewValueIsRequiredError("created_by")
	}
	i.createdBy = name
	return nil
}
