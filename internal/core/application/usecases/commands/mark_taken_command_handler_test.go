package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMarkTakenCommandHandler_Handle_ByTaker(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.Taking)
	cmd, _ := commands.NewMarkTakenCommand(inv.ID(), "alice")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff).Once(),
		m.staff.On("Resolve", ctx, "alice").Return(staff(t, "alice", kernel.RolePacking), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.invoices.On("Transition", ctx, inv, invoice.Taking).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkTakenCommandHandler(m.factory, testClock(), zap.NewNop())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.ToVerify, got.Status())
	m.uow.AssertNotCalled(t, "AuditLog")
	m.assert(t)
}

func TestMarkTakenCommandHandler_Handle_AdminIsAudited(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.Taking)
	cmd, _ := commands.NewMarkTakenCommand(inv.ID(), "root")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff).Once(),
		m.staff.On("Resolve", ctx, "root").Return(staff(t, "root", kernel.RoleAdmin), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.invoices.On("Transition", ctx, inv, invoice.Taking).Return(nil).Once(),
		m.uow.On("AuditLog").Return(m.audit).Once(),
		m.audit.On("Append", ctx, mock.MatchedBy(func(e ports.AuditEvent) bool {
			return e.Action == ports.AuditAdminMarkTaken && e.Actor == "root" && e.InvoiceID.IsEqual(inv.ID())
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkTakenCommandHandler(m.factory, testClock(), zap.NewNop())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.TakenBy())
	m.assert(t)
}

func TestMarkTakenCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.Taking)
	cmd, _ := commands.NewMarkTakenCommand(inv.ID(), "bob")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff).Once(),
		m.staff.On("Resolve", ctx, "bob").Return(staff(t, "bob", kernel.RolePacking), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkTakenCommandHandler(m.factory, testClock(), zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, invoice.Taking, inv.Status())
	m.assert(t)
}

func TestMarkTakenCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToTake)
	cmd, _ := commands.NewMarkTakenCommand(inv.ID(), "alice")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff).Once(),
		m.staff.On("Resolve", ctx, "alice").Return(staff(t, "alice", kernel.RolePacking), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkTakenCommandHandler(m.factory, testClock(), zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	m.assert(t)
}
