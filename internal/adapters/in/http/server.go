package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers are the use cases the HTTP binding exposes.
type Handlers struct {
	CreateInvoice       commands.CreateInvoiceCommandHandler
	EditInvoice         commands.EditInvoiceCommandHandler
	StartTaking         commands.StartTakingCommandHandler
	MarkTaken           commands.MarkTakenCommandHandler
	StartVerify         commands.StartVerifyCommandHandler
	MarkPacked          commands.MarkPackedCommandHandler
	OverrideStartVerify commands.OverrideStartVerifyCommandHandler
	SaveBoxCount        commands.SaveBoxCountCommandHandler
	UpdateFeedback      commands.UpdateFeedbackCommandHandler
	ConfirmDispatch     commands.ConfirmCourierDispatchCommandHandler
	CreateCustomer      commands.CreateCustomerCommandHandler
	UpdateCustomer      commands.UpdateCustomerCommandHandler
	DeleteCustomer      commands.DeleteCustomerCommandHandler

	FindMissingInvoices queries.FindMissingInvoicesQueryHandler
	GetCourierBoxes     queries.GetCourierBoxesQueryHandler
	GetPendingFeedback  queries.GetPendingFeedbackQueryHandler
	GetInvoicesToday    queries.GetInvoicesTodayQueryHandler
	GetStaffJobs        queries.GetStaffJobsQueryHandler
	GetStaffReport      queries.GetStaffReportQueryHandler
	GetStaffTimeline    queries.GetStaffTimelineQueryHandler
	GetInvoiceAudit     queries.GetInvoiceAuditQueryHandler
	GetPackInfo         queries.GetPackInfoQueryHandler
	SearchCustomers     queries.SearchCustomersQueryHandler
}

// Server implements the generated ServerInterface on top of the command and
// query handlers. Dates without a zone are business days in loc.
type Server struct {
	h      Handlers
	clock  kernel.Clock
	loc    *time.Location
	logger *zap.Logger
}

func NewServer(h Handlers, clock kernel.Clock, loc *time.Location, logger *zap.Logger) *Server {
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		h:      h,
		clock:  clock,
		loc:    loc,
		logger: logger.With(zap.String("component", "http")),
	}
}

// day resolves an optional date parameter, defaulting to today.
func (s *Server) day(d *types.Date) time.Time {
	if d == nil {
		return kernel.DayOf(s.clock.Now().In(s.loc))
	}
	y, m, dd := d.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, s.loc)
}

func (s *Server) date(d types.Date) time.Time {
	return s.day(&d)
}
