// Package storage persists expense records to a flat CSV file with a
// date,category,amount,description header, matching the layout consumed
// by the report emitters.
package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"expensetracker/internal/core"
)

var header = []string{"date", "category", "amount", "description"}

type CSVRepository struct {
	path string
}

// NewCSVRepository opens the repository at path, creating the parent
// directory and a header-only file when missing.
func NewCSVRepository(path string) (*CSVRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create expenses file: %w", err)
		}
		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("flush header: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("close expenses file: %w", err)
		}
	}

	return &CSVRepository{path: path}, nil
}

// Path returns the backing file path.
func (r *CSVRepository) Path() string {
	return r.path
}

// Load reads and validates every row. Malformed rows are skipped and
// reported via the log, never silently coerced into records.
func (r *CSVRepository) Load(ctx context.Context) ([]core.Record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open expenses file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records := make([]core.Record, 0)
	skipped := 0
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			slog.WarnContext(ctx, "Skipping unreadable row", "line", line, "error", err)
			skipped++
			continue
		}
		if line == 1 && len(row) > 0 && row[0] == header[0] {
			continue
		}
		if len(row) < 3 {
			slog.WarnContext(ctx, "Skipping short row", "line", line, "fields", len(row))
			skipped++
			continue
		}
		description := ""
		if len(row) > 3 {
			description = row[3]
		}
		rec, err := core.ParseRecord(row[0], row[1], row[2], description)
		if err != nil {
			slog.WarnContext(ctx, "Skipping invalid row", "line", line, "error", err)
			skipped++
			continue
		}
		records = append(records, rec)
	}

	slog.InfoContext(ctx, "Loaded expenses", "path", r.path, "rows", len(records), "skipped", skipped)
	return records, nil
}

// Append validates the record and writes it as one new row.
// Last write wins; there is no locking, the store is single-user.
func (r *CSVRepository) Append(ctx context.Context, rec core.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open expenses file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{rec.Date.String(), rec.Category, rec.Amount.String(), rec.Description}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write expense row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush expense row: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"date", rec.Date.String(),
		"category", rec.Category,
		"amount_cents", rec.Amount.Cents)
	return nil
}
