package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/errgroup"

	"expensetracker/internal/charts"
	"expensetracker/internal/core"
)

const tableRowsPerPage = 28

// Builder compiles the full PDF report: cover page, chart pages and the
// paginated expense table.
type Builder struct {
	gen  *charts.Generator
	info ProjectInfo
	topN int
}

func NewBuilder(gen *charts.Generator, info ProjectInfo, topN int) *Builder {
	return &Builder{gen: gen, info: info, topN: topN}
}

// Generate aggregates the records, renders the charts and writes the
// report to path. The aggregation itself stays synchronous; only the
// independent chart renders run in parallel.
func (b *Builder) Generate(ctx context.Context, records []core.Record, path string) error {
	months := core.ByMonth(records)
	categories := core.ByCategory(records)
	top := core.TopN(records, b.topN)

	var trendPNG, piePNG, barPNG, topPNG []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		trendPNG, err = b.gen.TrendChart(months)
		return err
	})
	g.Go(func() error {
		var err error
		piePNG, err = b.gen.CategoryPie(categories)
		return err
	})
	g.Go(func() error {
		var err error
		barPNG, err = b.gen.MonthlyBar(months)
		return err
	})
	g.Go(func() error {
		var err error
		topPNG, err = b.gen.TopExpensesBar(top)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("render report charts: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	b.coverPage(pdf)
	b.chartPage(pdf, "Monthly Spending Trend", "trend", trendPNG)
	b.chartPage(pdf, "Category-wise Spending Distribution", "pie", piePNG)
	b.overviewPage(pdf, barPNG, topPNG)
	b.tablePages(pdf, records)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	slog.InfoContext(ctx, "PDF report generated", "path", path, "rows", len(records))
	return nil
}

func (b *Builder) coverPage(pdf *fpdf.Fpdf) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 20, b.info.ProjectTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, b.info.ProjectName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, b.info.Course, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, b.info.Institute, "", 1, "C", false, 0, "")
	if b.info.Semester != "" {
		pdf.CellFormat(0, 8, fmt.Sprintf("Semester: %s", b.info.Semester), "", 1, "C", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	if b.info.Supervisor != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Supervisor: %s", b.info.Supervisor), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Generated by: %s", b.info.GeneratedBy), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")

	if len(b.info.Team) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Team Members:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, member := range b.info.Team {
			pdf.CellFormat(0, 6, fmt.Sprintf("- %s", member.Name), "", 1, "L", false, 0, "")
		}
	}
}

func (b *Builder) chartPage(pdf *fpdf.Fpdf, title, name string, png []byte) {
	if len(png) == 0 {
		return
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	drawImage(pdf, name, png, 15, 35, 180)
}

func (b *Builder) overviewPage(pdf *fpdf.Fpdf, barPNG, topPNG []byte) {
	if len(barPNG) == 0 && len(topPNG) == 0 {
		return
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Monthly Overview and Top Expenses", "", 1, "L", false, 0, "")
	if len(barPNG) > 0 {
		drawImage(pdf, "monthly-bar", barPNG, 15, 35, 180)
	}
	if len(topPNG) > 0 {
		drawImage(pdf, "top-expenses", topPNG, 15, 155, 180)
	}
}

func (b *Builder) tablePages(pdf *fpdf.Fpdf, records []core.Record) {
	if len(records) == 0 {
		return
	}

	colWidths := []float64{25, 40, 25, 100}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(220, 220, 220)
		for i, title := range []string{"Date", "Category", "Amount", "Description"} {
			pdf.CellFormat(colWidths[i], 7, title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	for i, r := range records {
		if i%tableRowsPerPage == 0 {
			pdf.AddPage()
			writeHeader()
		}
		description := r.Description
		if len(description) > 60 {
			description = description[:60]
		}
		pdf.CellFormat(colWidths[0], 6, r.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, r.Amount.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, description, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}

func drawImage(pdf *fpdf.Fpdf, name string, png []byte, x, y, w float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x, y, w, 0, false, opts, 0, "")
}
