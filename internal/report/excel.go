package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"expensetracker/internal/core"
)

const summarySheet = "Monthly Summary"

// WriteMonthlyExcel exports the monthly summary to an xlsx workbook at path.
func WriteMonthlyExcel(months []core.MonthTotal, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Month", "Amount"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, m := range months {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{m.Label(), m.Total.Units()}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
