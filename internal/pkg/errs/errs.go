package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound            = errors.New("object not found")
	ErrValueIsInvalid            = errors.New("value is invalid")
	ErrValueIsOutOfRange         = errors.New("value is out of range")
	ErrValueIsRequired           = errors.New("value is required")
	ErrInvalidTransition         = errors.New("invalid transition")
	ErrNotAuthorized             = errors.New("not authorized")
	ErrWorkloadExceeded          = errors.New("workload exceeded")
	ErrSelfVerificationForbidden = errors.New("self verification forbidden")
	ErrConflict                  = errors.New("conflict")
	ErrRangeInvalid              = errors.New("range is invalid")
	ErrIncompleteBoxCounts       = errors.New("incomplete box counts")
)

// IsValidation reports whether err belongs to the validation kind: a required,
// invalid or out-of-range value.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize flattens user-supplied values so they cannot break log lines.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError is returned when a status change is not an edge of the
// invoice state machine.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To), e.Cause)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotAuthorizedError is returned when the actor may not perform Action.
type NotAuthorizedError struct {
	Actor  string
	Action string
	Cause  error
}

func NewNotAuthorizedError(actor, action string) *NotAuthorizedError {
	return &NotAuthorizedError{Actor: actor, Action: action}
}

func NewNotAuthorizedErrorWithCause(actor, action string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Actor: actor, Action: action, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s cannot %s", ErrNotAuthorized, sanitize(e.Actor), e.Action), e.Cause)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// WorkloadExceededError is returned when starting a job would push the actor
// past the active job cap.
type WorkloadExceededError struct {
	Actor  string
	Active int
	Cap    int
}

func NewWorkloadExceededError(actor string, active, limit int) *WorkloadExceededError {
	return &WorkloadExceededError{Actor: actor, Active: active, Cap: limit}
}

func (e *WorkloadExceededError) Error() string {
	return fmt.Sprintf("%s: %s has %d active jobs, cap is %d", ErrWorkloadExceeded, sanitize(e.Actor), e.Active, e.Cap)
}

func (e *WorkloadExceededError) Unwrap() error {
	return ErrWorkloadExceeded
}

// SelfVerificationForbiddenError is returned when the taker of an invoice tries
// to verify it.
type SelfVerificationForbiddenError struct {
	Actor     string
	InvoiceID string
}

func NewSelfVerificationForbiddenError(actor, invoiceID string) *SelfVerificationForbiddenError {
	return &SelfVerificationForbiddenError{Actor: actor, InvoiceID: invoiceID}
}

func (e *SelfVerificationForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s took invoice %s", ErrSelfVerificationForbidden, sanitize(e.Actor), e.InvoiceID)
}

func (e *SelfVerificationForbiddenError) Unwrap() error {
	return ErrSelfVerificationForbidden
}

// ConflictError is returned when a compare-and-set lost a race: the stored state
// changed between read and write.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v was modified concurrently", ErrConflict, e.ParamName, e.ID), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// RangeInvalidError is returned when a day-end invoice range is malformed or inverted.
type RangeInvalidError struct {
	Start string
	End   string
	Cause error
}

func NewRangeInvalidError(start, end string) *RangeInvalidError {
	return &RangeInvalidError{Start: start, End: end}
}

func NewRangeInvalidErrorWithCause(start, end string, cause error) *RangeInvalidError {
	return &RangeInvalidError{Start: start, End: end, Cause: cause}
}

func (e *RangeInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s..%s", ErrRangeInvalid, sanitize(e.Start), sanitize(e.End)), e.Cause)
}

func (e *RangeInvalidError) Unwrap() error {
	return ErrRangeInvalid
}

// MissingBoxCount identifies one courier aggregate row without a box count.
type MissingBoxCount struct {
	RowID        string
	CustomerID   string
	CustomerName string
	CourierName  string
}

// IncompleteBoxCountsError is returned when a bulk dispatch confirmation contains
// rows without a positive box count. Missing lists every offending row.
type IncompleteBoxCountsError struct {
	Missing []MissingBoxCount
}

func NewIncompleteBoxCountsError(missing []MissingBoxCount) *IncompleteBoxCountsError {
	return &IncompleteBoxCountsError{Missing: missing}
}

func (e *IncompleteBoxCountsError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		name := m.CustomerName
		if name == "" {
			name = m.CustomerID
		}
		parts = append(parts, fmt.Sprintf("%s/%s", sanitize(name), m.CourierName))
	}
	return fmt.Sprintf("%s: %d rows missing box count [%s]",
		ErrIncompleteBoxCounts, len(e.Missing), strings.Join(parts, ", "))
}

func (e *IncompleteBoxCountsError) Unwrap() error {
	return ErrIncompleteBoxCounts
}
