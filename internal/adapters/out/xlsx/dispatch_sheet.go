// Package xlsx exports the day-end courier list as a spreadsheet for the
// dispatch desk.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fulfillment/internal/core/domain/services"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Dispatch"

var dispatchSheetHeaders = []string{
	"Courier", "Date", "Customer", "Invoices", "Invoice numbers", "Boxes", "Dispatched",
}

var dispatchSheetWidths = []float64{14, 12, 32, 10, 48, 8, 12}

// DispatchSheetWriter writes dispatch_<date>.xlsx into dir, replacing a file
// written earlier for the same day.
type DispatchSheetWriter struct {
	dir string
}

func NewDispatchSheetWriter(dir string) *DispatchSheetWriter {
	return &DispatchSheetWriter{dir: dir}
}

func (w *DispatchSheetWriter) Write(ctx context.Context, day time.Time, rows []services.CourierBoxRow) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", err
	}
	if err := fill(f, rows); err != nil {
		return "", fmt.Errorf("fill dispatch sheet: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("dispatch_%s.xlsx", day.Format(time.DateOnly)))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

func fill(f *excelize.File, rows []services.CourierBoxRow) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	missingStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FCE4D6"}},
	})
	if err != nil {
		return err
	}

	for i, h := range dispatchSheetHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err = f.SetCellValue(sheetName, col+"1", h); err != nil {
			return err
		}
	}
	if err = f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return err
	}

	totalBoxes := 0
	for i, r := range rows {
		line := i + 2
		values := []any{
			r.Courier.String(),
			r.CourierDate.Format(time.DateOnly),
			r.CustomerName,
			r.InvoiceCount,
			strings.Join(r.InvoiceNumbers, ", "),
			nil,
			yesNo(r.DispatchConfirmed),
		}
		if r.NoOfBox != nil {
			values[5] = *r.NoOfBox
			totalBoxes += *r.NoOfBox
		}
		if err = f.SetSheetRow(sheetName, fmt.Sprintf("A%d", line), &values); err != nil {
			return err
		}
		if !r.HasBoxCount() {
			cell := fmt.Sprintf("F%d", line)
			if err = f.SetCellStyle(sheetName, cell, cell, missingStyle); err != nil {
				return err
			}
		}
	}

	summary := len(rows) + 2
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err = f.SetSheetRow(sheetName, fmt.Sprintf("A%d", summary),
		&[]any{"Total", nil, fmt.Sprintf("%d customers", len(rows)), nil, nil, totalBoxes}); err != nil {
		return err
	}
	if err = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summary), fmt.Sprintf("G%d", summary), boldStyle); err != nil {
		return err
	}

	for i, width := range dispatchSheetWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err = f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}
	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
