package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetPendingFeedback handles GET /api/v1/feedback/pending.
func (s *Server) GetPendingFeedback(ctx echo.Context) error {
	views, err := s.h.GetPendingFeedback.Handle(ctx.Request().Context(), queries.NewGetPendingFeedbackQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	out := make([]servers.Feedback, 0, len(views))
	for _, v := range views {
		out = append(out, feedbackViewOf(v))
	}
	return ctx.JSON(http.StatusOK, out)
}

// UpdateFeedback handles PUT /api/v1/feedback/{feedbackId}.
func (s *Server) UpdateFeedback(ctx echo.Context, feedbackId servers.FeedbackId) error {
	var body servers.FeedbackUpdate
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	id, err := kernelID("feedback_id", feedbackId)
	if err != nil {
		return s.fail(ctx, err)
	}
	weight, err := parseDecimal("weight", body.Weight)
	if err != nil {
		return s.fail(ctx, err)
	}

	var stocksOK, followUp string
	if body.StocksOk != nil {
		stocksOK = *body.StocksOk
	}
	if body.FollowUp != nil {
		followUp = *body.FollowUp
	}

	cmd, err := commands.NewUpdateFeedbackCommand(id, body.NoOfBox, weight, body.StockReceived, stocksOK, followUp)
	if err != nil {
		return s.fail(ctx, err)
	}

	fb, err := s.h.UpdateFeedback.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, feedbackOf(fb))
}

// SaveBoxCount handles PUT /api/v1/feedback/{feedbackId}/boxes.
func (s *Server) SaveBoxCount(ctx echo.Context, feedbackId servers.FeedbackId) error {
	var body servers.BoxCount
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	id, err := kernelID("feedback_id", feedbackId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSaveBoxCountCommand(id, body.NoOfBox)
	if err != nil {
		return s.fail(ctx, err)
	}

	fb, err := s.h.SaveBoxCount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, feedbackOf(fb))
}

// GetCourierBoxes handles GET /api/v1/couriers/boxes.
func (s *Server) GetCourierBoxes(ctx echo.Context, params servers.GetCourierBoxesParams) error {
	query, err := queries.NewGetCourierBoxesQuery(s.day(params.Date))
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.h.GetCourierBoxes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	out := make([]servers.CourierBoxRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, courierBoxRowOf(r))
	}
	return ctx.JSON(http.StatusOK, out)
}

// ConfirmDispatch handles POST /api/v1/couriers/dispatch.
func (s *Server) ConfirmDispatch(ctx echo.Context) error {
	var body servers.DispatchRequest
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	rowIDs := make([]kernel.UUID, 0, len(body.RowIds))
	for _, raw := range body.RowIds {
		id, err := kernelID("row_ids", raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		rowIDs = append(rowIDs, id)
	}

	cmd, err := commands.NewConfirmCourierDispatchCommand(rowIDs, s.date(body.CourierDate))
	if err != nil {
		return s.fail(ctx, err)
	}

	confirmed, err := s.h.ConfirmDispatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	out := make([]servers.Feedback, 0, len(confirmed))
	for _, fb := range confirmed {
		out = append(out, feedbackOf(fb))
	}
	return ctx.JSON(http.StatusOK, out)
}

// FindMissingInvoices handles GET /api/v1/invoices/missing.
func (s *Server) FindMissingInvoices(ctx echo.Context, params servers.FindMissingInvoicesParams) error {
	query, err := queries.NewFindMissingInvoicesQuery(s.day(params.Date), params.Start, params.End)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.FindMissingInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	missing := resp.Missing
	if missing == nil {
		missing = make([]string, 0)
	}
	return ctx.JSON(http.StatusOK, servers.MissingInvoices{
		Date:    toDate(resp.Day),
		Start:   resp.Start,
		End:     resp.End,
		Issued:  resp.Issued,
		Missing: missing,
	})
}
