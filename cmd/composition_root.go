package cmd

import (
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/xlsx"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.IssuedInvoiceCache
	clock      kernel.Clock
	loc        *time.Location
	logger     *zap.Logger
}

// NewCompositionRoot wires the handlers. cache may be nil, in which case the
// missing-invoice detector always reads the database.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, cache ports.IssuedInvoiceCache, logger *zap.Logger) CompositionRoot {
	loc := cfg.Location()
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, loc),
		cache:      cache,
		clock:      kernel.NewSystemClock(loc),
		loc:        loc,
		logger:     logger,
	}
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.New()
	})
}

func (c *CompositionRoot) packingUoWFactory() commands.PackingUoWFactory {
	return FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.New()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.New()
	})
}

func (c *CompositionRoot) feedbackUoWFactory() commands.FeedbackUoWFactory {
	return FuncFeedbackUoWFactory(func() commands.FeedbackUoW {
		return c.uowFactory.New()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.New()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.New()
	})
}

// reads returns a unit of work that is never begun, so its repositories run
// on the plain connection.
func (c *CompositionRoot) reads() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateUpsertStaffCommandHandler() commands.UpsertStaffCommandHandler {
	return commands.NewUpsertStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateGetCourierBoxesQueryHandler() queries.GetCourierBoxesQueryHandler {
	return queries.NewGetCourierBoxesQueryHandler(c.gormDB, c.loc)
}

func (c *CompositionRoot) CreateGetPendingFeedbackQueryHandler() queries.GetPendingFeedbackQueryHandler {
	return queries.NewGetPendingFeedbackQueryHandler(c.gormDB, c.loc)
}

// CreateHTTPHandlers builds every use case the HTTP binding exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateInvoice:       commands.NewCreateInvoiceCommandHandler(c.billingUoWFactory(), c.cache, c.clock, c.logger),
		EditInvoice:         commands.NewEditInvoiceCommandHandler(c.billingUoWFactory(), c.cache, c.clock, c.logger),
		StartTaking:         commands.NewStartTakingCommandHandler(c.workflowUoWFactory(), c.clock, c.logger),
		MarkTaken:           commands.NewMarkTakenCommandHandler(c.workflowUoWFactory(), c.clock, c.logger),
		StartVerify:         commands.NewStartVerifyCommandHandler(c.workflowUoWFactory(), c.clock, c.logger),
		MarkPacked:          commands.NewMarkPackedCommandHandler(c.packingUoWFactory(), c.clock, c.logger),
		OverrideStartVerify: commands.NewOverrideStartVerifyCommandHandler(c.workflowUoWFactory(), c.clock, c.logger),
		SaveBoxCount:        commands.NewSaveBoxCountCommandHandler(c.feedbackUoWFactory()),
		UpdateFeedback:      commands.NewUpdateFeedbackCommandHandler(c.feedbackUoWFactory(), c.clock),
		ConfirmDispatch:     commands.NewConfirmCourierDispatchCommandHandler(c.feedbackUoWFactory(), c.clock, c.logger),
		CreateCustomer:      commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateCustomer:      commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory()),
		DeleteCustomer:      commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory()),

		FindMissingInvoices: queries.NewFindMissingInvoicesQueryHandler(c.reads().InvoiceRepository(), c.cache, c.loc, c.logger),
		GetCourierBoxes:     c.CreateGetCourierBoxesQueryHandler(),
		GetPendingFeedback:  c.CreateGetPendingFeedbackQueryHandler(),
		GetInvoicesToday:    queries.NewGetInvoicesTodayQueryHandler(c.gormDB, c.loc),
		GetStaffJobs:        queries.NewGetStaffJobsQueryHandler(c.gormDB, c.loc),
		GetStaffReport:      queries.NewGetStaffReportQueryHandler(c.gormDB, c.loc),
		GetStaffTimeline:    queries.NewGetStaffTimelineQueryHandler(c.gormDB, c.loc),
		GetInvoiceAudit:     queries.NewGetInvoiceAuditQueryHandler(c.reads().InvoiceRepository(), c.gormDB, c.loc),
		GetPackInfo:         queries.NewGetPackInfoQueryHandler(c.gormDB, c.clock, c.loc),
		SearchCustomers:     queries.NewSearchCustomersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.clock, c.loc, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	boxes := c.CreateGetCourierBoxesQueryHandler()
	pending := c.CreateGetPendingFeedbackQueryHandler()
	dayEnd := jobs.NewDayEndJob(
		boxes,
		pending,
		c.reads().FeedbackRepository(),
		xlsx.NewDispatchSheetWriter(c.cfg.DayEnd.ExportDir),
		c.clock,
		c.loc,
		c.cfg.DayEnd.Cron,
		c.logger,
	)
	return jobs.NewJobManager(dayEnd)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncFeedbackUoWFactory func() commands.FeedbackUoW

func (f FuncFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
