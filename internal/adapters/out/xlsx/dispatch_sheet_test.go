package xlsx_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/xlsx"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var _ ports.DispatchSheetWriter = (*xlsx.DispatchSheetWriter)(nil)

func TestDispatchSheetWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	four := 4
	id := kernel.NewUUID()

	rows := []services.CourierBoxRow{
		{
			RowID:          &id,
			Courier:        kernel.CourierST,
			CourierDate:    day,
			CustomerID:     kernel.NewUUID(),
			CustomerName:   "Apollo Pharmacy",
			InvoiceCount:   2,
			InvoiceNumbers: []string{"SA000001", "SA000002"},
			NoOfBox:        &four,
		},
		{
			Courier:        kernel.CourierProfessional,
			CourierDate:    day,
			CustomerID:     kernel.NewUUID(),
			CustomerName:   "MedPlus",
			InvoiceCount:   1,
			InvoiceNumbers: []string{"SA000003"},
		},
	}

	path, err := xlsx.NewDispatchSheetWriter(dir).Write(context.Background(), day, rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dispatch_2025-03-14.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows("Dispatch")
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, []string{"Courier", "Date", "Customer", "Invoices", "Invoice numbers", "Boxes", "Dispatched"}, got[0])
	assert.Equal(t, []string{"ST", "2025-03-14", "Apollo Pharmacy", "2", "SA000001, SA000002", "4", "No"}, got[1])
	assert.Equal(t, "MedPlus", got[2][2])
	assert.Equal(t, "", got[2][5])
	assert.Equal(t, "Total", got[3][0])
	assert.Equal(t, "2 customers", got[3][2])
	assert.Equal(t, "4", got[3][5])
}

func TestDispatchSheetWriter_EmptyDay(t *testing.T) {
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	path, err := xlsx.NewDispatchSheetWriter(t.TempDir()).Write(context.Background(), day, nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows("Dispatch")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0 customers", got[1][2])
}

func TestDispatchSheetWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := xlsx.NewDispatchSheetWriter(t.TempDir()).Write(ctx, time.Now(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
