// Package feedback reconciles packed invoices with what the customer actually
// received.
//
// Invoices are not reconciled one by one. Every invoice packed for the same
// customer and courier on the same day joins one Feedback aggregate; staff
// enter the box count and weight for the aggregate, later record whether the
// stock arrived intact (Confirm), and finally confirm the courier pickup for a
// whole day at once (ConfirmDispatch).
//
// Rows whose issue is not resolved are "open" and form the pending list.
package feedback
