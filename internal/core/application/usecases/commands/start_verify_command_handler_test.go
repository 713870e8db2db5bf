package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStartVerifyCommandHandler_Handle_SegregationOfDuty(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToVerify)

	t.Run("taker is refused", func(t *testing.T) {
		cmd, _ := commands.NewStartVerifyCommand(inv.ID(), "alice")

		m := newWorkflowMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("StaffDirectory").Return(m.staff).Once(),
			m.staff.On("Resolve", ctx, "alice").Return(staff(t, "alice", kernel.RolePacking), nil).Once(),
			m.uow.On("InvoiceRepository").Return(m.invoices),
			m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
			m.invoices.On("CountActiveJobs", ctx, "alice").Return(0, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
		_, err := h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrSelfVerificationForbidden)
		assert.Equal(t, invoice.ToVerify, inv.Status())
		assert.Empty(t, inv.PackedBy())
		m.assert(t)
	})

	t.Run("someone else verifies", func(t *testing.T) {
		cmd, _ := commands.NewStartVerifyCommand(inv.ID(), "bob")

		m := newWorkflowMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("StaffDirectory").Return(m.staff).Once(),
			m.staff.On("Resolve", ctx, "bob").Return(staff(t, "bob", kernel.RoleBilling), nil).Once(),
			m.uow.On("InvoiceRepository").Return(m.invoices),
			m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
			m.invoices.On("CountActiveJobs", ctx, "bob").Return(1, nil).Once(),
			m.invoices.On("Transition", ctx, inv, invoice.ToVerify).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
		got, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, invoice.Verifying, got.Status())
		assert.Equal(t, "bob", got.PackedBy())
		m.assert(t)
	})
}

func TestStartVerifyCommandHandler_Handle_WorkloadExceeded(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToVerify)
	cmd, _ := commands.NewStartVerifyCommand(inv.ID(), "bob")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff).Once(),
		m.staff.On("Resolve", ctx, "bob").Return(staff(t, "bob", kernel.RolePacking), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.invoices.On("CountActiveJobs", ctx, "bob").Return(2, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrWorkloadExceeded)
	m.assert(t)
}

func TestStartVerifyCommandHandler_Handle_AdminMustOverride(t *testing.T) {
	ctx := t.Context()
	inv := invoiceIn(t, invoice.ToVerify)
	cmd, _ := commands.NewStartVerifyCommand(inv.ID(), "root")

	m := newWorkflowMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StaffDirectory").Return(m.staff).Once(),
		m.staff.On("Resolve", ctx, "root").Return(staff(t, "root", kernel.RoleAdmin), nil).Once(),
		m.uow.On("InvoiceRepository").Return(m.invoices),
		m.invoices.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		m.invoices.On("CountActiveJobs", ctx, "root").Return(0, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewStartVerifyCommandHandler(m.factory, testClock(), zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	m.assert(t)
}
