package core

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// CategoryTotal is the amount spent in one category.
	CategoryTotal struct {
		Category string
		Total    Money
	}

	// MonthTotal is the amount spent in one calendar month.
	MonthTotal struct {
		Year  int
		Month int // 1-12
		Total Money
	}
)

// Label renders the month as "YYYY-MM".
func (mt MonthTotal) Label() string {
	return fmt.Sprintf("%04d-%02d", mt.Year, mt.Month)
}

// ByCategory sums amounts grouped by exact category label. The result is
// ordered by first appearance so pie-chart legends stay reproducible;
// other consumers must not rely on the order.
func ByCategory(records []Record) []CategoryTotal {
	index := make(map[string]int, len(records))
	out := make([]CategoryTotal, 0)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(out)
			index[r.Category] = i
			out = append(out, CategoryTotal{Category: r.Category})
		}
		out[i].Total.Cents += r.Amount.Cents
	}
	return out
}

// ByMonth sums amounts grouped by calendar month, chronologically ascending.
// Months without records are absent, not zero-filled.
func ByMonth(records []Record) []MonthTotal {
	type key struct{ year, month int }
	index := make(map[key]int, len(records))
	out := make([]MonthTotal, 0)
	for _, r := range records {
		k := key{r.Date.Year(), r.Date.Month()}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, MonthTotal{Year: k.year, Month: k.month})
		}
		out[i].Total.Cents += r.Amount.Cents
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// TopN returns the n largest-amount records, descending. Ties keep the
// original input order (stable sort). n beyond len(records) returns all
// records sorted.
func TopN(records []Record, n int) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cents > out[j].Amount.Cents
	})
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Search returns records whose textual rendering (date, category, amount,
// description) contains keyword, case-insensitively. Order is preserved;
// an empty keyword matches everything.
func Search(records []Record, keyword string) []Record {
	keyword = strings.ToLower(keyword)
	out := make([]Record, 0)
	for _, r := range records {
		row := strings.ToLower(strings.Join([]string{
			r.Date.String(), r.Category, r.Amount.String(), r.Description,
		}, " "))
		if strings.Contains(row, keyword) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory returns records whose category matches exactly,
// case-sensitively, in the original order.
func FilterByCategory(records []Record, category string) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDateRange returns records dated within [start, end], inclusive
// on both ends, in the original order.
func FilterByDateRange(records []Record, start, end Date) ([]Record, error) {
	if start.After(end.Time) {
		return nil, fmt.Errorf("%w: %s after %s", ErrBadRange, start, end)
	}
	out := make([]Record, 0)
	for _, r := range records {
		if r.Date.Before(start.Time) || r.Date.After(end.Time) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
