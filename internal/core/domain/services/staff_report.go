package services

import (
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
)

// InvoiceActivity is the part of an invoice that counts toward staff output.
type InvoiceActivity struct {
	Status          invoice.Status
	TakenBy         string
	PackedBy        string
	TakeCompletedAt *time.Time
	PackCompletedAt *time.Time
}

// StaffCounts is one line of the staff report.
type StaffCounts struct {
	Staff     string
	Taking    int
	Taken     int
	Verifying int
	Packed    int
	Total     int
}

func (c *StaffCounts) add(other StaffCounts) {
	c.Taking += other.Taking
	c.Taken += other.Taken
	c.Verifying += other.Verifying
	c.Packed += other.Packed
	c.Total += other.Total
}

// StaffReport is a day's output per staff member plus column totals.
type StaffReport struct {
	Rows     []StaffCounts
	Totals   StaffCounts
	DayCount int
}

type StaffReportBuilder struct{}

func NewStaffReportBuilder() StaffReportBuilder {
	return StaffReportBuilder{}
}

// Build counts in-progress jobs by status and finished jobs by completion
// timestamp, so an invoice packed today credits its taker with "taken" and its
// verifier with "packed". Rows are sorted by name ignoring case.
func (StaffReportBuilder) Build(activity []InvoiceActivity) StaffReport {
	byStaff := make(map[string]*StaffCounts)
	inc := func(staff string, field func(*StaffCounts) *int) {
		name := strings.TrimSpace(staff)
		if name == "" {
			return
		}
		c, ok := byStaff[name]
		if !ok {
			c = &StaffCounts{Staff: name}
			byStaff[name] = c
		}
		*field(c)++
		c.Total++
	}

	for _, a := range activity {
		switch a.Status {
		case invoice.Taking:
			inc(a.TakenBy, func(c *StaffCounts) *int { return &c.Taking })
		case invoice.Verifying:
			inc(a.PackedBy, func(c *StaffCounts) *int { return &c.Verifying })
		}
		if a.TakeCompletedAt != nil {
			inc(a.TakenBy, func(c *StaffCounts) *int { return &c.Taken })
		}
		if a.PackCompletedAt != nil {
			inc(a.PackedBy, func(c *StaffCounts) *int { return &c.Packed })
		}
	}

	report := StaffReport{Rows: make([]StaffCounts, 0, len(byStaff)), DayCount: len(activity)}
	for _, c := range byStaff {
		report.Rows = append(report.Rows, *c)
		report.Totals.add(*c)
	}
	slices.SortFunc(report.Rows, func(a, b StaffCounts) int {
		if c := strings.Compare(strings.ToLower(a.Staff), strings.ToLower(b.Staff)); c != 0 {
			return c
		}
		return strings.Compare(a.Staff, b.Staff)
	})
	return report
}
