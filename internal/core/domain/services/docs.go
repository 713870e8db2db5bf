// Package services holds domain logic that spans more than one aggregate.
//
//   - WorkloadLimiter: caps how many invoices one staff member holds in
//     TAKING or VERIFYING and applies the start transitions
//   - MissingInvoiceDetector: day-end gap detection over invoice numbers
//   - CourierBoxAggregator: the day-end courier list with box counts
//   - StaffReportBuilder: per-staff output for a day
//
// All services are stateless value types; the application layer supplies
// data read inside its unit of work.
package services
