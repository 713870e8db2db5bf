package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierBoxAggregator_Aggregate(t *testing.T) {
	apollo, medplus, corner := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	packedAt := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)
	day := kernel.DayOf(packedAt)

	packed := []services.PackedInvoice{
		{Number: "SA000003", CustomerID: apollo, CustomerName: "Apollo", Courier: kernel.CourierST, PackCompletedAt: packedAt},
		{Number: "SA000001", CustomerID: apollo, CustomerName: "Apollo", Courier: kernel.CourierST, PackCompletedAt: packedAt.Add(time.Hour)},
		{Number: "SA000002", CustomerID: medplus, CustomerName: "medPlus", Courier: kernel.CourierProfessional, PackCompletedAt: packedAt},
		{Number: "SA000004", CustomerID: apollo, CustomerName: "Apollo", Courier: kernel.CourierProfessional, PackCompletedAt: packedAt},
		{Number: "SA000005", CustomerID: corner, CustomerName: "Corner Store", Courier: kernel.CourierLocal, PackCompletedAt: packedAt},
	}

	apolloST := feedbackRow(t, apollo, kernel.CourierST, day, "Apollo", 3)
	medplusPro := feedbackRow(t, medplus, kernel.CourierProfessional, day, "medPlus", 0)

	rows := services.NewCourierBoxAggregator().Aggregate(packed, []*feedback.Feedback{apolloST, medplusPro})

	require.Len(t, rows, 3)

	assert.Equal(t, kernel.CourierST, rows[0].Courier)
	assert.Equal(t, 2, rows[0].InvoiceCount)
	assert.Equal(t, []string{"SA000001", "SA000003"}, rows[0].InvoiceNumbers)
	assert.Equal(t, 3, *rows[0].NoOfBox)
	assert.Equal(t, apolloST.ID(), *rows[0].RowID)
	assert.Equal(t, day, rows[0].CourierDate)

	assert.Equal(t, kernel.CourierProfessional, rows[1].Courier)
	assert.Equal(t, "Apollo", rows[1].CustomerName)
	assert.Nil(t, rows[1].RowID)

	assert.Equal(t, "medPlus", rows[2].CustomerName)
	assert.False(t, rows[2].HasBoxCount())

	missing := services.MissingBoxCounts(rows)
	require.Len(t, missing, 2)
	assert.Equal(t, "Apollo", missing[0].CustomerName)
	assert.Empty(t, missing[0].RowID)
	assert.Equal(t, medplusPro.ID().String(), missing[1].RowID)
}

func TestCourierBoxAggregator_Empty(t *testing.T) {
	rows := services.NewCourierBoxAggregator().Aggregate(nil, nil)
	assert.Empty(t, rows)
	assert.Empty(t, services.MissingBoxCounts(rows))
}

func feedbackRow(t *testing.T, customerID kernel.UUID, c kernel.Courier, day time.Time, name string, boxes int) *feedback.Feedback {
	t.Helper()
	key, err := feedback.NewKey(customerID, c, day)
	require.NoError(t, err)
	f, err := feedback.NewFeedback(kernel.NewUUID(), key, name)
	require.NoError(t, err)
	require.NoError(t, f.SetBoxCount(boxes))
	return f
}
