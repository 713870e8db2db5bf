package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func staff(t *testing.T, name string, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(name, role)
	require.NoError(t, err)
	return a
}

func newInvoice(t *testing.T, number string) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.Draft{
		Number:       kernel.MustInvoiceNumber(number),
		InvoiceDate:  now,
		Customer:     invoice.CustomerRef{ID: kernel.NewUUID(), Name: "Apollo"},
		Courier:      kernel.CourierST,
		NoOfProducts: 3,
		CreatedBy:    "meena",
	}, now)
	require.NoError(t, err)
	return inv
}

// activeJobs mirrors the repository count: invoices owned in TAKING or VERIFYING.
func activeJobs(username string, invoices ...*invoice.Invoice) int {
	n := 0
	for _, inv := range invoices {
		if owner, ok := inv.ActiveOwner(); ok && owner == username {
			n++
		}
	}
	return n
}

func TestWorkloadLimiter_Cap(t *testing.T) {
	limiter := services.NewWorkloadLimiter()
	assert.Equal(t, 2, limiter.Cap())

	require.NoError(t, limiter.Admit("alice", 0))
	require.NoError(t, limiter.Admit("alice", 1))
	require.ErrorIs(t, limiter.Admit("alice", 2), errs.ErrWorkloadExceeded)
}

func TestWorkloadLimiter_StartTaking_ThirdJobRejected(t *testing.T) {
	limiter := services.NewWorkloadLimiter()
	alice := staff(t, "alice", kernel.RolePacking)
	inv1, inv2, inv3 := newInvoice(t, "SA000001"), newInvoice(t, "SA000002"), newInvoice(t, "SA000003")

	require.NoError(t, limiter.StartTaking(inv1, alice, activeJobs("alice", inv1, inv2, inv3), now))
	require.NoError(t, limiter.StartTaking(inv2, alice, activeJobs("alice", inv1, inv2, inv3), now))

	err := limiter.StartTaking(inv3, alice, activeJobs("alice", inv1, inv2, inv3), now)

	var exceeded *errs.WorkloadExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 2, exceeded.Active)
	assert.Equal(t, invoice.ToTake, inv3.Status())
	assert.Empty(t, inv3.TakenBy())
}

func TestWorkloadLimiter_CompletingFreesASlot(t *testing.T) {
	limiter := services.NewWorkloadLimiter()
	alice := staff(t, "alice", kernel.RolePacking)
	bob := staff(t, "bob", kernel.RolePacking)
	inv1, inv2, inv3 := newInvoice(t, "SA000001"), newInvoice(t, "SA000002"), newInvoice(t, "SA000003")
	all := []*invoice.Invoice{inv1, inv2, inv3}

	require.NoError(t, limiter.StartTaking(inv1, alice, activeJobs("alice", all...), now))
	require.NoError(t, limiter.StartTaking(inv2, alice, activeJobs("alice", all...), now))
	require.NoError(t, inv1.MarkTaken(alice, now))

	require.NoError(t, limiter.StartTaking(inv3, alice, activeJobs("alice", all...), now))

	// verifying counts against the same cap
	require.NoError(t, limiter.StartVerify(inv1, bob, activeJobs("bob", all...), now))
	assert.Equal(t, 1, activeJobs("bob", all...))
	assert.Equal(t, 2, activeJobs("alice", all...))
}

func TestWorkloadLimiter_StartVerify(t *testing.T) {
	limiter := services.NewWorkloadLimiter()
	alice := staff(t, "alice", kernel.RolePacking)
	bob := staff(t, "bob", kernel.RolePacking)

	inv := newInvoice(t, "SA000001")
	require.NoError(t, limiter.StartTaking(inv, alice, 0, now))
	require.NoError(t, inv.MarkTaken(alice, now))

	t.Run("self verification", func(t *testing.T) {
		require.ErrorIs(t, limiter.StartVerify(inv, alice, 0, now), errs.ErrSelfVerificationForbidden)
	})

	t.Run("verifier at cap", func(t *testing.T) {
		require.ErrorIs(t, limiter.StartVerify(inv, bob, 2, now), errs.ErrWorkloadExceeded)
		assert.Equal(t, invoice.ToVerify, inv.Status())
	})

	t.Run("invalid transition wins over workload", func(t *testing.T) {
		fresh := newInvoice(t, "SA000009")
		require.ErrorIs(t, limiter.StartVerify(fresh, bob, 2, now), errs.ErrInvalidTransition)
	})

	t.Run("other staff", func(t *testing.T) {
		require.NoError(t, limiter.StartVerify(inv, bob, 1, now))
		assert.Equal(t, "bob", inv.PackedBy())
	})
}

func TestWorkloadLimiter_OverrideStartVerify(t *testing.T) {
	limiter := services.NewWorkloadLimiter()
	alice := staff(t, "alice", kernel.RolePacking)
	admin := staff(t, "root", kernel.RoleAdmin)

	inv := newInvoice(t, "SA000001")
	require.NoError(t, limiter.StartTaking(inv, alice, 0, now))
	require.NoError(t, inv.MarkTaken(alice, now))

	require.ErrorIs(t, limiter.OverrideStartVerify(inv, alice, alice, 0, now), errs.ErrNotAuthorized)
	require.ErrorIs(t, limiter.OverrideStartVerify(inv, admin, alice, 2, now), errs.ErrWorkloadExceeded)

	require.NoError(t, limiter.OverrideStartVerify(inv, admin, alice, 1, now))
	assert.True(t, inv.VerifyOverridden())
}

func TestWorkloadLimiter_AdminCannotStart(t *testing.T) {
	limiter := services.NewWorkloadLimiter()
	inv := newInvoice(t, "SA000001")

	err := limiter.StartTaking(inv, staff(t, "root", kernel.RoleAdmin), 0, now)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}
