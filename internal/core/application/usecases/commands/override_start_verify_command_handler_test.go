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

func TestNewOverrideStartVerifyCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewOverrideStartVerifyCommand(kernel.NewUUID(), "root", "alice", "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewOverrideStartVerifyCommand(kernel.NewUUID(), "root", " alice ", "only packer on shift")
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Assignee())
	assert.Equal(t, "only packer on shift", cmd.Reason())
}

func TestOverrideStartVerifyCommandHandler_Handle_AssignsTakerWithAudit(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToVerify)
	cmd, _ := commands.NewOverrideStartVerifyCommand(inv.ID(), "root", "alice", "only packer on shift")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff),
		m.staff.On("Resolve", ctx, "root").Return(staff(t, "root", kernel.RoleAdmin), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.staff.On("Resolve", ctx, "alice").Return(staff(t, "alice", kernel.RolePacking), nil).Once(),
		m.invoices.On("CountActiveJobs", ctx, "alice").Return(1, nil).Once(),
		m.invoices.On("Transition", ctx, inv, invoice.ToVerify).Return(nil).Once(),
		m.uow.On("AuditLog").Return(m.audit).Once(),
		m.audit.On("Append", ctx, mock.MatchedBy(func(e ports.AuditEvent) bool {
			details, ok := e.Details.(map[string]any)
			return ok && e.Action == ports.AuditOverrideStartVerify &&
				details["self_verification"] == true && details["reason"] == "only packer on shift"
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewOverrideStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.Verifying, got.Status())
	assert.Equal(t, "alice", got.PackedBy())
	assert.True(t, got.VerifyOverridden())
	m.assert(t)
}

func TestOverrideStartVerifyCommandHandler_Handle_CapCountsAssignee(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToVerify)
	cmd, _ := commands.NewOverrideStartVerifyCommand(inv.ID(), "root", "carol", "rush order")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff),
		m.staff.On("Resolve", ctx, "root").Return(staff(t, "root", kernel.RoleAdmin), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.staff.On("Resolve", ctx, "carol").Return(staff(t, "carol", kernel.RolePacking), nil).Once(),
		m.invoices.On("CountActiveJobs", ctx, "carol").Return(2, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewOverrideStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrWorkloadExceeded)
	m.assert(t)
}

func TestOverrideStartVerifyCommandHandler_Handle_NonAdmin(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToVerify)
	cmd, _ := commands.NewOverrideStartVerifyCommand(inv.ID(), "bob", "alice", "trust me")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff),
		m.staff.On("Resolve", ctx, "bob").Return(staff(t, "bob", kernel.RolePacking), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.staff.On("Resolve", ctx, "alice").Return(staff(t, "alice", kernel.RolePacking), nil).Once(),
		m.invoices.On("CountActiveJobs", ctx, "alice").Return(0, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewOverrideStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	m.assert(t)
}
