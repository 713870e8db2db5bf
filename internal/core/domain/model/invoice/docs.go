// Package invoice contains the Invoice aggregate and its Status state machine.
//
// An invoice is picked ("taken") by one staff member, double-checked
// ("verified") by a different one and boxed ("packed"):
//
//	TO_TAKE ─StartTaking─> TAKING ─MarkTaken─> TO_VERIFY ─StartVerify─> VERIFYING ─MarkPacked─> PACKED
//
// The aggregate decides whether a transition is legal for the acting staff
// member:
//   - only the taker (or an admin) completes a pick
//   - the taker may never verify the same invoice
//   - only the verifier (or an admin) completes packing
//   - admins do not own jobs; OverrideStartVerify is their audited way to
//     assign verification
//
// Rules spanning several invoices (the workload cap) and concurrent writers
// (compare-and-set on status) are enforced by the application layer and the
// repository.
//
// ParseStatus understands the older status vocabulary still present in legacy
// rows and maps it onto the canonical states.
package invoice
