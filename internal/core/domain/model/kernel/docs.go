// Package kernel holds the value objects shared by every aggregate of the
// fulfillment domain.
//
//   - UUID: identifiers of invoices, customers and feedback aggregates
//   - InvoiceNumber: the SA0xxxxx business key, plus the loose sequence parser
//     used by day-end reconciliation
//   - Courier: the fixed set of delivery channels
//   - Role and Actor: the staff member an operation is performed by
//   - Clock: the time source, so transitions are testable
//
// Value objects are immutable and carry a constructor guard; their zero values
// fail Validate.
package kernel
