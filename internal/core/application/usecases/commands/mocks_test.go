package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Transition(ctx context.Context, inv *invoice.Invoice, expected invoice.Status) error {
	return m.Called(ctx, inv, expected).Error(0)
}

func (m *MockInvoiceRepository) UpdateContent(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetByNumber(ctx context.Context, n kernel.InvoiceNumber) (*invoice.Invoice, error) {
	args := m.Called(ctx, n)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) CountActiveJobs(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) ListNumbersByDate(ctx context.Context, day time.Time) ([]string, error) {
	args := m.Called(ctx, day)
	numbers, _ := args.Get(0).([]string)
	return numbers, args.Error(1)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) AddInvoice(
	ctx context.Context,
	key feedback.Key,
	customerName string,
) (*feedback.Feedback, error) {
	args := m.Called(ctx, key, customerName)
	fb, _ := args.Get(0).(*feedback.Feedback)
	return fb, args.Error(1)
}

func (m *MockFeedbackRepository) Update(ctx context.Context, fb *feedback.Feedback) error {
	return m.Called(ctx, fb).Error(0)
}

func (m *MockFeedbackRepository) Get(ctx context.Context, id kernel.UUID) (*feedback.Feedback, error) {
	args := m.Called(ctx, id)
	fb, _ := args.Get(0).(*feedback.Feedback)
	return fb, args.Error(1)
}

func (m *MockFeedbackRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]*feedback.Feedback)
	return rows, args.Error(1)
}

func (m *MockFeedbackRepository) ListByDate(ctx context.Context, day time.Time) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, day)
	rows, _ := args.Get(0).([]*feedback.Feedback)
	return rows, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) Resolve(ctx context.Context, username string) (kernel.Actor, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(kernel.Actor)
	return a, args.Error(1)
}

func (m *MockStaffDirectory) Upsert(ctx context.Context, actor kernel.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, event ports.AuditEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockIssuedInvoiceCache struct{ mock.Mock }

func (m *MockIssuedInvoiceCache) Get(ctx context.Context, day time.Time) ([]string, int64, bool, error) {
	args := m.Called(ctx, day)
	numbers, _ := args.Get(0).([]string)
	gen, _ := args.Get(1).(int64)
	return numbers, gen, args.Bool(2), args.Error(3)
}

func (m *MockIssuedInvoiceCache) Set(ctx context.Context, day time.Time, gen int64, numbers []string) (bool, error) {
	args := m.Called(ctx, day, gen, numbers)
	return args.Bool(0), args.Error(1)
}

func (m *MockIssuedInvoiceCache) Invalidate(ctx context.Context, day time.Time) error {
	return m.Called(ctx, day).Error(0)
}

// MockUoW satisfies every unit-of-work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	return m.Called().Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository {
	return m.Called().Get(0).(ports.FeedbackRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) StaffDirectory() ports.StaffDirectory {
	return m.Called().Get(0).(ports.StaffDirectory)
}

func (m *MockUoW) AuditLog() ports.AuditLog {
	return m.Called().Get(0).(ports.AuditLog)
}

func (m *MockUoW) WrittenInvoiceDays() []time.Time {
	days, _ := m.Called().Get(0).([]time.Time)
	return days
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return m.Called().Get(0).(commands.WorkflowUoW)
}

type MockPackingUoWFactory struct{ mock.Mock }

func (m *MockPackingUoWFactory) Create() commands.PackingUoW {
	return m.Called().Get(0).(commands.PackingUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	return m.Called().Get(0).(commands.BillingUoW)
}

type MockFeedbackUoWFactory struct{ mock.Mock }

func (m *MockFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return m.Called().Get(0).(commands.FeedbackUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	return m.Called().Get(0).(commands.StaffUoW)
}

var testNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func testClock() kernel.Clock {
	return kernel.FixedClock(testNow)
}

func staff(t *testing.T, name string, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(name, role)
	require.NoError(t, err)
	return a
}

// invoiceIn builds an invoice already in status s. Taker is alice, verifier
// is bob.
func invoiceIn(t *testing.T, s invoice.Status) *invoice.Invoice {
	t.Helper()
	started := testNow.Add(-time.Hour)
	snap := invoice.Snapshot{
		ID:           kernel.NewUUID(),
		Number:       kernel.MustInvoiceNumber("SA000101"),
		InvoiceDate:  testNow,
		Customer:     invoice.CustomerRef{ID: kernel.NewUUID(), Name: "Apollo Pharmacy"},
		Courier:      kernel.CourierST,
		NoOfProducts: 4,
		Status:       s,
		CreatedBy:    "meena",
		CreatedAt:    started,
	}
	if s >= invoice.Taking {
		snap.TakenBy = "alice"
		snap.TakeStartedAt = &started
	}
	if s >= invoice.ToVerify {
		snap.TakeCompletedAt = &started
	}
	if s >= invoice.Verifying {
		snap.PackedBy = "bob"
		snap.VerifyStartedAt = &started
	}
	inv, err := invoice.RestoreInvoice(snap)
	require.NoError(t, err)
	return inv
}
