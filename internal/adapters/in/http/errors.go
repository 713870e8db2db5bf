package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps an error kind to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrIncompleteBoxCounts):
		return http.StatusUnprocessableEntity
	case errs.IsValidation(err), errors.Is(err, errs.ErrRangeInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized), errors.Is(err, errs.ErrSelfVerificationForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrWorkloadExceeded),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Business rejections are logged at Warn;
// anything unmapped is an Error and its text is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	fields := []zap.Field{
		zap.String("method", ctx.Request().Method),
		zap.String("path", ctx.Path()),
		zap.Int("status", code),
		zap.Error(err),
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
		return ctx.JSON(code, servers.Error{Code: code, Message: "internal error"})
	}
	s.logger.Warn("request rejected", fields...)

	var incomplete *errs.IncompleteBoxCountsError
	if errors.As(err, &incomplete) {
		missing := make([]servers.MissingBoxCount, 0, len(incomplete.Missing))
		for _, m := range incomplete.Missing {
			missing = append(missing, servers.MissingBoxCount{
				RowId:        m.RowID,
				CustomerId:   m.CustomerID,
				CustomerName: m.CustomerName,
				CourierName:  m.CourierName,
			})
		}
		return ctx.JSON(code, servers.IncompleteBoxCounts{Code: code, Message: err.Error(), Missing: missing})
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func badBody(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body: " + err.Error(),
	})
}
