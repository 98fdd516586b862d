package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"expensetracker/internal/core"
)

func TestWriteMonthlyExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly_summary.xlsx")
	months := []core.MonthTotal{
		{Year: 2024, Month: 1, Total: core.Money{Cents: 10050}},
		{Year: 2024, Month: 2, Total: core.Money{Cents: 20000}},
	}
	if err := WriteMonthlyExcel(months, path); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Monthly Summary", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "2024-01" {
		t.Fatalf("expected 2024-01 in A2, got %q", got)
	}
	got, err = f.GetCellValue("Monthly Summary", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "100.5" {
		t.Fatalf("expected 100.5 in B2, got %q", got)
	}
}

func TestWriteMonthlyExcelEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteMonthlyExcel(nil, path); err != nil {
		t.Fatalf("expected header-only workbook, got %v", err)
	}
}
