// Package charts renders PNG charts from aggregated expense series.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"expensetracker/internal/core"
)

const maxLabelLen = 30

// Generator renders the chart set used by the report emitters.
type Generator struct {
	width  int
	height int
}

func NewGenerator(width, height int) *Generator {
	return &Generator{width: width, height: height}
}

// TrendChart renders the monthly spending trend as a time series line.
// Fewer than two months is not drawable; it returns (nil, nil).
func (g *Generator) TrendChart(months []core.MonthTotal) ([]byte, error) {
	if len(months) < 2 {
		return nil, nil
	}

	xValues := make([]time.Time, len(months))
	yValues := make([]float64, len(months))
	for i, m := range months {
		xValues[i] = time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
		yValues[i] = m.Total.Units()
	}

	graph := chart.Chart{
		Title:  "Monthly Spending Trend",
		Width:  g.width,
		Height: g.height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: amountFormatter,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// MonthlyBar renders monthly totals as a bar chart.
func (g *Generator) MonthlyBar(months []core.MonthTotal) ([]byte, error) {
	if len(months) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(months))
	for _, m := range months {
		bars = append(bars, chart.Value{
			Label: m.Label(),
			Value: m.Total.Units(),
		})
	}

	graph := chart.BarChart{
		Title:  "Monthly Spending",
		Width:  g.width,
		Height: g.height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		BarWidth: 60,
		YAxis: chart.YAxis{
			ValueFormatter: amountFormatter,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render monthly bar chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryPie renders the category distribution with percentage labels.
// Slices below 1% of the total are dropped to keep the legend readable.
func (g *Generator) CategoryPie(categories []core.CategoryTotal) ([]byte, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	total := 0.0
	for _, cat := range categories {
		total += cat.Total.Units()
	}
	if total <= 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(categories))
	for _, cat := range categories {
		percentage := (cat.Total.Units() / total) * 100
		if percentage > 1.0 {
			values = append(values, chart.Value{
				Label: fmt.Sprintf("%s: %.2f (%.1f%%)", cat.Category, cat.Total.Units(), percentage),
				Value: cat.Total.Units(),
			})
		}
	}

	pie := chart.PieChart{
		Title:  "Category-wise Spending Distribution",
		Width:  g.width,
		Height: g.width, // square canvas
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// TopExpensesBar renders the given records (already sorted by TopN) as a
// bar chart labeled by description.
func (g *Generator) TopExpensesBar(records []core.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(records))
	for _, r := range records {
		label := r.Description
		if label == "" {
			label = r.Category
		}
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: r.Amount.Units(),
		})
	}

	graph := chart.BarChart{
		Title:  fmt.Sprintf("Top %d Highest Expenses", len(records)),
		Width:  g.width,
		Height: g.height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		BarWidth: 40,
		YAxis: chart.YAxis{
			ValueFormatter: amountFormatter,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render top expenses chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func amountFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
