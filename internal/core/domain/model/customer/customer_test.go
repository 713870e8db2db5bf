package customer_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "  Apollo   Pharmacy ", " Chennai ", "Ravi", kernel.CourierST)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Apollo Pharmacy", c.Name())
		assert.Equal(t, "apollo pharmacy", c.NormalizedName())
		assert.Equal(t, "Chennai", c.City())
	})

	t.Run("name and courier required", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), " ", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer_name")
		assert.Contains(t, err.Error(), "courier_name")
	})
}

func TestCustomer_Update(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Apollo", "Chennai", "Ravi", kernel.CourierST)
	require.NoError(t, err)

	require.Error(t, c.Update("Apollo", "Chennai", "Ravi", kernel.Courier("Bus")))
	assert.Equal(t, kernel.CourierST, c.Courier())

	require.NoError(t, c.Update("Apollo", "Madurai", "Kumar", kernel.CourierLocal))
	assert.Equal(t, "Madurai", c.City())
	assert.Equal(t, kernel.CourierLocal, c.Courier())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, customer.NormalizeName("apollo PHARMACY"), customer.NormalizeName(" Apollo  Pharmacy "))
}
