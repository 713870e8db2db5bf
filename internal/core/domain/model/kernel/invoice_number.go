package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// InvoiceNumberPrefix is the fixed head of every canonical invoice number.
	InvoiceNumberPrefix = "SA0"
	// InvoiceSequenceDigits is the zero-padded width of the sequence part.
	InvoiceSequenceDigits = 5
)

var (
	invoiceNumberPattern = regexp.MustCompile(`^SA0\d{5}$`)
	nonDigits            = regexp.MustCompile(`\D`)

	// ErrInvoiceNumberIsNotConstructed is returned by Validate on a zero-value InvoiceNumber.
	ErrInvoiceNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"invoice number must be created via NewInvoiceNumber")
)

// InvoiceNumber is the business key of an invoice: "SA0" followed by exactly
// five digits (e.g. SA000123). It is the one external contract that must match
// bit for bit, so the constructor accepts nothing but the canonical shape after
// trimming surrounding whitespace and upper-casing.
type InvoiceNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewInvoiceNumber validates raw against ^SA0\d{5}$.
func NewInvoiceNumber(raw string) (InvoiceNumber, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return InvoiceNumber{}, errs.NewValueIsRequiredError("invoice_number")
	}
	if !invoiceNumberPattern.MatchString(v) {
		return InvoiceNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"invoice_number",
			fmt.Errorf("%q does not match %s", raw, invoiceNumberPattern.String()),
		)
	}
	return InvoiceNumber{value: v, guard: guard.NewConstructorGuard()}, nil
}

// MustInvoiceNumber is NewInvoiceNumber for literals known to be valid.
func MustInvoiceNumber(raw string) InvoiceNumber {
	n, err := NewInvoiceNumber(raw)
	if err != nil {
		panic(err)
	}
	return n
}

func (n InvoiceNumber) String() string {
	return n.value
}

// Sequence returns the numeric part.
func (n InvoiceNumber) Sequence() int {
	seq, _ := ParseInvoiceSequence(n.value)
	return seq
}

func (n InvoiceNumber) IsEqual(other InvoiceNumber) bool {
	return n.value == other.value
}

func (n InvoiceNumber) Validate() error {
	return n.guard.Validate(ErrInvoiceNumberIsNotConstructed)
}

// ParseInvoiceSequence extracts the number from loosely formatted input by
// dropping every non-digit character, so "SA000123", "sa-123" and "SA123456"
// all parse. It fails when no digits remain or the value overflows int.
func ParseInvoiceSequence(raw string) (int, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return 0, errors.New("no digits in " + strconv.Quote(raw))
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return n, nil
}

// FormatInvoiceNumber renders a sequence in canonical form. Sequences wider
// than five digits are not truncated.
func FormatInvoiceNumber(seq int) string {
	return fmt.Sprintf("%s%0*d", InvoiceNumberPrefix, InvoiceSequenceDigits, seq)
}
