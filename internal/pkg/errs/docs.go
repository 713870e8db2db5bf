// Package errs holds the error kinds the fulfillment core reports. Adapters
// translate them (HTTP status codes, log levels) without parsing messages.
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed or
//     missing input (together they form the validation kind, see IsValidation)
//   - ObjectNotFoundError: for when an object cannot be found
//   - InvalidTransitionError, NotAuthorizedError, WorkloadExceededError,
//     SelfVerificationForbiddenError: workflow rule rejections
//   - ConflictError: a lost compare-and-set race
//   - RangeInvalidError, IncompleteBoxCountsError: day-end reconciliation failures
//
// Every kind is a sentinel (ErrValueIsRequired, ...) plus a struct carrying the
// details, built by NewXError or NewXErrorWithCause, whose Unwrap returns the
// sentinel.
//
// Callers classify failures with errors.Is against the sentinels and extract
// details with errors.As against the struct types.
package errs
