package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := kernel.ParseRole(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, kernel.RoleAdmin, r)

	_, err = kernel.ParseRole("courier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.ParseRole("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewActor(t *testing.T) {
	t.Run("staff", func(t *testing.T) {
		a, err := kernel.NewActor(" alice ", kernel.RolePacking)
		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "alice", a.Username())
		assert.False(t, a.IsAdmin())
		assert.True(t, a.Is("alice"))
		assert.False(t, a.Is(""))
	})

	t.Run("admin", func(t *testing.T) {
		a, err := kernel.NewActor("root", kernel.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, a.IsAdmin())
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := kernel.NewActor("  ", kernel.RoleBilling)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := kernel.NewActor("bob", kernel.Role("driver"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value", func(t *testing.T) {
		var a kernel.Actor
		require.ErrorIs(t, a.Validate(), kernel.ErrActorIsNotConstructed)
	})
}

func TestParseCourier(t *testing.T) {
	c, err := kernel.ParseCourier("professional")
	require.NoError(t, err)
	assert.Equal(t, kernel.CourierProfessional, c)
	assert.True(t, c.IsDispatchable())

	assert.False(t, kernel.CourierLocal.IsDispatchable())

	_, err = kernel.ParseCourier("DHL")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.Error(t, kernel.Courier("").Validate())
}
