package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MaxMissingRange bounds how many sequence numbers one day-end check may scan.
const MaxMissingRange = 100_000

// MissingInvoiceDetector finds gaps in a day's invoice numbering. It is a pure
// function of its inputs: re-running it with the same range against the same
// issued numbers always returns the same list.
type MissingInvoiceDetector struct{}

func NewMissingInvoiceDetector() MissingInvoiceDetector {
	return MissingInvoiceDetector{}
}

// FindMissing returns, in ascending order, the canonical invoice numbers in
// [start, end] that are absent from issued.
//
// Parsing keeps only the digits of each number, so loosely typed input such
// as "SA123456" or "sa-12" is accepted. Issued numbers that do not parse are
// ignored.
//
// Returns:
//   - an empty slice when there is no gap
//   - RangeInvalid when start or end has no digits, end < start, or the range
//     spans more than MaxMissingRange numbers
func (MissingInvoiceDetector) FindMissing(start, end string, issued []string) ([]string, error) {
	from, fromErr := kernel.ParseInvoiceSequence(start)
	to, toErr := kernel.ParseInvoiceSequence(end)
	if err := errors.Join(fromErr, toErr); err != nil {
		return nil, errs.NewRangeInvalidErrorWithCause(start, end, err)
	}
	if to < from {
		return nil, errs.NewRangeInvalidErrorWithCause(start, end, fmt.Errorf("end %d is before start %d", to, from))
	}
	if to-from >= MaxMissingRange {
		return nil, errs.NewRangeInvalidErrorWithCause(start, end,
			fmt.Errorf("range covers %d numbers, limit is %d", to-from+1, MaxMissingRange))
	}

	present := make(map[int]struct{}, len(issued))
	for _, n := range issued {
		if seq, err := kernel.ParseInvoiceSequence(n); err == nil {
			present[seq] = struct{}{}
		}
	}

	missing := make([]string, 0)
	for n := from; n <= to; n++ {
		if _, ok := present[n]; !ok {
			missing = append(missing, kernel.FormatInvoiceNumber(n))
		}
	}
	return missing, nil
}
