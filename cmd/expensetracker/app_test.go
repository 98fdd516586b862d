package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"expensetracker/internal/charts"
	"expensetracker/internal/config"
	applog "expensetracker/internal/log"
	"expensetracker/internal/storage"
)

func testApp(t *testing.T, input string) (*app, *strings.Builder) {
	t.Helper()
	base := t.TempDir()
	cfg := &config.Config{
		ExpensesFile:    filepath.Join(base, "expenses.csv"),
		ReportsDir:      base,
		ProjectInfoFile: filepath.Join(base, "project_info.json"),
		TopN:            10,
		ChartWidth:      400,
		ChartHeight:     300,
	}
	store, err := storage.NewCSVRepository(cfg.ExpensesFile)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	out := &strings.Builder{}
	logger := applog.New(applog.DefaultConfig())
	return newApp(cfg, store, charts.NewGenerator(cfg.ChartWidth, cfg.ChartHeight), logger, strings.NewReader(input), out), out
}

func TestRunAddListQuit(t *testing.T) {
	input := strings.Join([]string{
		"1",          // add expense
		"2024-01-05", // date
		"Food",       // category
		"12.50",      // amount
		"lunch",      // description
		"2",          // list all
		"0",          // quit
	}, "\n") + "\n"

	app, out := testApp(t, input)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Expense saved.") {
		t.Fatalf("expected save confirmation, got:\n%s", got)
	}
	if !strings.Contains(got, "Food") || !strings.Contains(got, "12.50") {
		t.Fatalf("expected listed expense, got:\n%s", got)
	}
}

func TestRunRejectsInvalidExpense(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"2024-02-30", // impossible date
		"Food",
		"10",
		"",
		"0",
	}, "\n") + "\n"

	app, out := testApp(t, input)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "bad date") {
		t.Fatalf("expected bad date error, got:\n%s", out.String())
	}
}

func TestRunPredictInsufficientData(t *testing.T) {
	input := strings.Join([]string{
		"1", "2024-01-05", "Food", "10", "",
		"9", // predict with a single month of data
		"0",
	}, "\n") + "\n"

	app, out := testApp(t, input)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Need at least 2 months") {
		t.Fatalf("expected insufficient data message, got:\n%s", out.String())
	}
}

func TestRunPredictLinearSeries(t *testing.T) {
	input := strings.Join([]string{
		"1", "2024-01-05", "Food", "100", "",
		"1", "2024-02-05", "Food", "200", "",
		"1", "2024-03-05", "Food", "300", "",
		"9",
		"0",
	}, "\n") + "\n"

	app, out := testApp(t, input)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Predicted spending for 2024-04: 400.00") {
		t.Fatalf("expected 400.00 prediction for april, got:\n%s", out.String())
	}
}

func TestRunEOFStops(t *testing.T) {
	app, _ := testApp(t, "")
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run on EOF: %v", err)
	}
}
