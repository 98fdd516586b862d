package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"expensetracker/internal/charts"
	"expensetracker/internal/config"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/report"
	"expensetracker/internal/storage"
)

const menu = `
--- Smart Expense Tracker ---
 1) Add expense
 2) List all expenses
 3) Filter by category
 4) Filter by date range
 5) Search expenses
 6) Monthly summary
 7) Category summary
 8) Top expenses
 9) Predict next month
10) Render charts
11) Export Excel summary
12) Generate PDF report
13) Edit project info
 0) Quit
`

type app struct {
	cfg    *config.Config
	store  *storage.CSVRepository
	gen    *charts.Generator
	logger *applog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

func newApp(cfg *config.Config, store *storage.CSVRepository, gen *charts.Generator, logger *applog.Logger, in io.Reader, out io.Writer) *app {
	return &app{
		cfg:    cfg,
		store:  store,
		gen:    gen,
		logger: logger.WithComponent(applog.ComponentCLI),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// run drives the interactive menu until quit or EOF. Every operation
// re-loads records from the store and discards derived state afterwards.
func (a *app) run(ctx context.Context) error {
	for {
		fmt.Fprint(a.out, menu)
		choice, ok := a.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = a.addExpense(ctx)
		case "2":
			err = a.listAll(ctx)
		case "3":
			err = a.filterByCategory(ctx)
		case "4":
			err = a.filterByDateRange(ctx)
		case "5":
			err = a.search(ctx)
		case "6":
			err = a.monthlySummary(ctx)
		case "7":
			err = a.categorySummary(ctx)
		case "8":
			err = a.topExpenses(ctx)
		case "9":
			err = a.predictNextMonth(ctx)
		case "10":
			err = a.renderCharts(ctx)
		case "11":
			err = a.exportExcel(ctx)
		case "12":
			err = a.generatePDF(ctx)
		case "13":
			err = a.editProjectInfo()
		case "0", "q", "quit":
			fmt.Fprintln(a.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown option.")
		}

		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *app) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) addExpense(ctx context.Context) error {
	rawDate, ok := a.prompt("Date (YYYY-MM-DD): ")
	if !ok {
		return nil
	}
	rawCategory, ok := a.prompt("Category: ")
	if !ok {
		return nil
	}
	rawAmount, ok := a.prompt("Amount: ")
	if !ok {
		return nil
	}
	rawDescription, ok := a.prompt("Description (optional): ")
	if !ok {
		return nil
	}

	rec, err := core.ParseRecord(rawDate, rawCategory, rawAmount, rawDescription)
	if err != nil {
		return err
	}
	if err := a.store.Append(ctx, rec); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Expense saved.")
	return nil
}

func (a *app) listAll(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	a.printRecords(records)
	return nil
}

func (a *app) filterByCategory(ctx context.Context) error {
	category, ok := a.prompt("Category (exact match): ")
	if !ok {
		return nil
	}
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	a.printRecords(core.FilterByCategory(records, category))
	return nil
}

func (a *app) filterByDateRange(ctx context.Context) error {
	rawStart, ok := a.prompt("Start date (YYYY-MM-DD): ")
	if !ok {
		return nil
	}
	rawEnd, ok := a.prompt("End date (YYYY-MM-DD): ")
	if !ok {
		return nil
	}
	start, err := core.ParseDate(rawStart)
	if err != nil {
		return err
	}
	end, err := core.ParseDate(rawEnd)
	if err != nil {
		return err
	}
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	filtered, err := core.FilterByDateRange(records, start, end)
	if err != nil {
		return err
	}
	a.printRecords(filtered)
	return nil
}

func (a *app) search(ctx context.Context) error {
	keyword, ok := a.prompt("Keyword: ")
	if !ok {
		return nil
	}
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	a.printRecords(core.Search(records, keyword))
	return nil
}

func (a *app) monthlySummary(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	months := core.ByMonth(records)
	if len(months) == 0 {
		fmt.Fprintln(a.out, "No data.")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tTOTAL")
	for _, m := range months {
		fmt.Fprintf(w, "%s\t%s\n", m.Label(), m.Total)
	}
	return w.Flush()
}

func (a *app) categorySummary(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	categories := core.ByCategory(records)
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No data.")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\n", c.Category, c.Total)
	}
	return w.Flush()
}

func (a *app) topExpenses(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	a.printRecords(core.TopN(records, a.cfg.TopN))
	return nil
}

func (a *app) predictNextMonth(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	p, err := core.PredictNext(core.ByMonth(records))
	if errors.Is(err, core.ErrInsufficientData) {
		fmt.Fprintln(a.out, "Need at least 2 months of data for prediction.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Predicted spending for %s: %.2f (slope %.2f, intercept %.2f)\n",
		p.Label(), p.Amount, p.Slope, p.Intercept)
	return nil
}

func (a *app) renderCharts(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	months := core.ByMonth(records)
	categories := core.ByCategory(records)
	top := core.TopN(records, a.cfg.TopN)

	outputs := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"spending_trend.png", func() ([]byte, error) { return a.gen.TrendChart(months) }},
		{"category_pie_chart.png", func() ([]byte, error) { return a.gen.CategoryPie(categories) }},
		{"monthly_bar_chart.png", func() ([]byte, error) { return a.gen.MonthlyBar(months) }},
		{"top_expenses.png", func() ([]byte, error) { return a.gen.TopExpensesBar(top) }},
	}
	written := 0
	for _, o := range outputs {
		data, err := o.render()
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}
		path := filepath.Join(a.cfg.ReportsDir, o.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write chart %s: %w", o.name, err)
		}
		fmt.Fprintf(a.out, "Wrote %s\n", path)
		written++
	}
	if written == 0 {
		fmt.Fprintln(a.out, "No data available to plot.")
	}
	return nil
}

func (a *app) exportExcel(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	months := core.ByMonth(records)
	if len(months) == 0 {
		fmt.Fprintln(a.out, "No data to export.")
		return nil
	}
	path := filepath.Join(a.cfg.ReportsDir, "monthly_summary.xlsx")
	if err := report.WriteMonthlyExcel(months, path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Wrote %s\n", path)
	return nil
}

func (a *app) generatePDF(ctx context.Context) error {
	records, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	info := report.LoadProjectInfo(a.cfg.ProjectInfoFile)
	builder := report.NewBuilder(a.gen, info, a.cfg.TopN)
	path := filepath.Join(a.cfg.ReportsDir, "Full_Expense_Report.pdf")
	if err := builder.Generate(ctx, records, path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Wrote %s\n", path)
	return nil
}

func (a *app) editProjectInfo() error {
	info := report.LoadProjectInfo(a.cfg.ProjectInfoFile)

	fields := []struct {
		label string
		value *string
	}{
		{"Project title", &info.ProjectTitle},
		{"Project name", &info.ProjectName},
		{"Course", &info.Course},
		{"Institute", &info.Institute},
		{"Supervisor", &info.Supervisor},
		{"Semester", &info.Semester},
		{"Generated by", &info.GeneratedBy},
	}
	for _, f := range fields {
		v, ok := a.prompt(fmt.Sprintf("%s [%s]: ", f.label, *f.value))
		if !ok {
			return nil
		}
		if v != "" {
			*f.value = v
		}
	}

	team, ok := a.prompt("Team members (comma-separated, empty to keep): ")
	if !ok {
		return nil
	}
	if team != "" {
		info.Team = nil
		for _, name := range strings.Split(team, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				info.Team = append(info.Team, report.TeamMember{Name: name})
			}
		}
	}

	if err := report.SaveProjectInfo(a.cfg.ProjectInfoFile, info); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project info saved.")
	return nil
}

func (a *app) printRecords(records []core.Record) {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No matching expenses.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	var total int64
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Date, r.Category, r.Amount, r.Description)
		total += r.Amount.Cents
	}
	fmt.Fprintf(w, "\tTOTAL\t%s\t(%d rows)\n", core.Money{Cents: total}, len(records))
	w.Flush()
}
