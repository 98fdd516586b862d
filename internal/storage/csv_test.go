package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expensetracker/internal/core"
)

func TestNewCSVRepositoryCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "expenses.csv")
	_, err := NewCSVRepository(path)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if strings.TrimSpace(string(content)) != "date,category,amount,description" {
		t.Fatalf("expected header-only file, got %q", content)
	}
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCSVRepository(filepath.Join(t.TempDir(), "expenses.csv"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	want := []core.Record{
		{Date: core.NewDate(2024, 1, 5), Category: "Food", Amount: core.Money{Cents: 1250}, Description: "lunch"},
		{Date: core.NewDate(2024, 2, 1), Category: "Rent", Amount: core.Money{Cents: 50000}, Description: ""},
	}
	for _, rec := range want {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Date.String() != want[i].Date.String() ||
			got[i].Category != want[i].Category ||
			got[i].Amount.Cents != want[i].Amount.Cents ||
			got[i].Description != want[i].Description {
			t.Fatalf("record %d mismatch: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestAppendRejectsInvalidRecord(t *testing.T) {
	repo, err := NewCSVRepository(filepath.Join(t.TempDir(), "expenses.csv"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	bad := core.Record{Date: core.NewDate(2024, 1, 1), Category: "", Amount: core.Money{Cents: 100}}
	if err := repo.Append(context.Background(), bad); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	content := strings.Join([]string{
		"date,category,amount,description",
		"2024-01-05,Food,12.50,lunch",
		"not-a-date,Food,10.00,bad date",
		"2024-01-06,,10.00,empty category",
		"2024-01-07,Food,-3.00,negative amount",
		"2024-01-08,Transport,5.00,bus",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo, err := NewCSVRepository(path)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 valid records, got %+v", got)
	}
	if got[0].Category != "Food" || got[1].Category != "Transport" {
		t.Fatalf("unexpected records %+v", got)
	}
}
