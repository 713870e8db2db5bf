package http

import (
	"errors"
	"io"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateInvoice handles POST /api/v1/invoices.
func (s *Server) CreateInvoice(ctx echo.Context, params servers.CreateInvoiceParams) error {
	var body servers.NewInvoice
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	customerID, idErr := kernelID("customer_id", body.CustomerId)
	value, valueErr := parseDecimal("invoice_value", body.InvoiceValue)
	if err := errors.Join(idErr, valueErr); err != nil {
		return s.fail(ctx, err)
	}

	p := commands.CreateInvoiceParams{
		Number:       body.InvoiceNumber,
		InvoiceDate:  s.date(body.InvoiceDate),
		CustomerID:   customerID,
		NoOfProducts: body.NoOfProducts,
		Value:        value,
		CreatedBy:    params.XActor,
	}
	if body.CourierName != nil {
		p.Courier = *body.CourierName
	}
	if body.RepName != nil {
		p.RepName = *body.RepName
	}

	cmd, err := commands.NewCreateInvoiceCommand(p)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.h.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, invoiceOf(inv))
}

// EditInvoice handles PATCH /api/v1/invoices/{invoiceId}.
func (s *Server) EditInvoice(ctx echo.Context, invoiceId servers.InvoiceId, params servers.EditInvoiceParams) error {
	var body servers.InvoicePatch
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}

	p := commands.EditInvoiceParams{
		Number:       body.InvoiceNumber,
		RepName:      body.RepName,
		Courier:      body.CourierName,
		NoOfProducts: body.NoOfProducts,
		ClearValue:   body.ClearValue != nil && *body.ClearValue,
	}
	if body.CustomerId != nil {
		customerID, idErr := kernelID("customer_id", *body.CustomerId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		p.CustomerID = &customerID
	}
	if body.InvoiceDate != nil {
		d := s.date(*body.InvoiceDate)
		p.InvoiceDate = &d
	}
	if p.Value, err = parseDecimal("invoice_value", body.InvoiceValue); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEditInvoiceCommand(id, params.XActor, p)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.h.EditInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoiceOf(inv))
}

// StartTaking handles POST /api/v1/invoices/{invoiceId}/start-taking.
func (s *Server) StartTaking(ctx echo.Context, invoiceId servers.InvoiceId, params servers.StartTakingParams) error {
	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewStartTakingCommand(id, params.XActor)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.h.StartTaking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoiceOf(inv))
}

// MarkTaken handles POST /api/v1/invoices/{invoiceId}/mark-taken.
func (s *Server) MarkTaken(ctx echo.Context, invoiceId servers.InvoiceId, params servers.MarkTakenParams) error {
	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkTakenCommand(id, params.XActor)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.h.MarkTaken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoiceOf(inv))
}

// StartVerify handles POST /api/v1/invoices/{invoiceId}/start-verify.
func (s *Server) StartVerify(ctx echo.Context, invoiceId servers.InvoiceId, params servers.StartVerifyParams) error {
	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewStartVerifyCommand(id, params.XActor)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.h.StartVerify.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoiceOf(inv))
}

// MarkPacked handles POST /api/v1/invoices/{invoiceId}/mark-packed. The body
// is optional.
func (s *Server) MarkPacked(ctx echo.Context, invoiceId servers.InvoiceId, params servers.MarkPackedParams) error {
	var body servers.PackDetails
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return badBody(ctx, err)
	}

	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	weight, err := parseDecimal("weight", body.Weight)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkPackedCommand(id, params.XActor, body.NoOfBox, weight)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.MarkPacked.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.PackedInvoice{
		Invoice:  invoiceOf(res.Invoice),
		Feedback: feedbackOf(res.Feedback),
	})
}

// OverrideVerify handles POST /api/v1/invoices/{invoiceId}/override-verify.
func (s *Server) OverrideVerify(ctx echo.Context, invoiceId servers.InvoiceId, params servers.OverrideVerifyParams) error {
	var body servers.OverrideVerify
	if err := ctx.Bind(&body); err != nil {
		return badBody(ctx, err)
	}

	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewOverrideStartVerifyCommand(id, params.XActor, body.Assignee, body.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.h.OverrideStartVerify.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoiceOf(inv))
}

// GetPackInfo handles GET /api/v1/invoices/{invoiceId}/pack-info.
func (s *Server) GetPackInfo(ctx echo.Context, invoiceId servers.InvoiceId) error {
	id, err := kernelID("invoice_id", invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetPackInfoQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	info, err := s.h.GetPackInfo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := servers.PackInfo{
		InvoiceId:      info.InvoiceID.Raw(),
		InvoiceNumber:  info.Number,
		CustomerId:     info.CustomerID.Raw(),
		CustomerName:   info.CustomerName,
		CourierName:    info.Courier.String(),
		CourierDate:    toDate(info.CourierDate),
		InvoiceNumbers: info.InvoiceNumbers,
		NoOfBox:        info.NoOfBox,
		Weight:         decimalString(info.Weight),
	}
	if info.FeedbackID != nil {
		fid := info.FeedbackID.Raw()
		resp.FeedbackId = &fid
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetInvoicesToday handles GET /api/v1/invoices/today.
func (s *Server) GetInvoicesToday(ctx echo.Context, params servers.GetInvoicesTodayParams) error {
	var tab, sameCustomer string
	if params.Tab != nil {
		tab = *params.Tab
	}
	if params.SameCustomer != nil {
		sameCustomer = *params.SameCustomer
	}

	query, err := queries.NewGetInvoicesTodayQuery(s.day(params.Date), tab, sameCustomer)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.GetInvoicesToday.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.InvoiceList{
		Tab:      resp.Tab,
		Invoices: invoiceViewsOf(resp.Invoices),
		Counts:   resp.Counts,
	})
}

// GetInvoiceAudit handles GET /api/v1/invoices/audit/{invoiceNumber}.
func (s *Server) GetInvoiceAudit(ctx echo.Context, invoiceNumber string) error {
	query, err := queries.NewGetInvoiceAuditQuery(invoiceNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.GetInvoiceAudit.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	out := servers.InvoiceAudit{
		Invoice: invoiceViewOf(resp.Invoice),
		Events:  make([]servers.AuditEvent, 0, len(resp.Events)),
	}
	if resp.Feedback != nil {
		fb := feedbackViewOf(*resp.Feedback)
		out.Feedback = &fb
	}
	for _, e := range resp.Events {
		out.Events = append(out.Events, auditEventOf(e))
	}
	return ctx.JSON(http.StatusOK, out)
}
