package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetStaffJobs handles GET /api/v1/staff/{username}/jobs.
func (s *Server) GetStaffJobs(ctx echo.Context, username servers.Username) error {
	query, err := queries.NewGetStaffJobsQuery(username)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.GetStaffJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.StaffJobs{
		MyJobs:        invoiceViewsOf(resp.MyJobs),
		BillsToTake:   invoiceViewsOf(resp.BillsToTake),
		BillsToVerify: invoiceViewsOf(resp.BillsToVerify),
	})
}

// GetStaffTimeline handles GET /api/v1/staff/{username}/timeline.
func (s *Server) GetStaffTimeline(ctx echo.Context, username servers.Username, params servers.GetStaffTimelineParams) error {
	query, err := queries.NewGetStaffTimelineQuery(username, s.day(params.Date))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.GetStaffTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoiceViewsOf(views))
}

// GetStaffReport handles GET /api/v1/staff/report.
func (s *Server) GetStaffReport(ctx echo.Context, params servers.GetStaffReportParams) error {
	day := s.day(params.Date)
	query, err := queries.NewGetStaffReportQuery(day)
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.h.GetStaffReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows := make([]servers.StaffCounts, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, staffCountsOf(r))
	}
	return ctx.JSON(http.StatusOK, servers.StaffReport{
		Date:     toDate(day),
		Rows:     rows,
		Totals:   staffCountsOf(report.Totals),
		DayCount: report.DayCount,
	})
}
