package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the fixed textual date format used across storage and reports.
const DateLayout = "2006-01-02"

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Record struct {
		Date        Date
		Category    string
		Amount      Money
		Description string
	}
)

var (
	ErrBadDate          = errors.New("bad date")
	ErrBadAmount        = errors.New("bad amount")
	ErrEmptyCategory    = errors.New("empty category")
	ErrBadRange         = errors.New("bad date range")
	ErrInsufficientData = errors.New("insufficient data")
)

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in DateLayout form. Impossible calendar dates
// (e.g. 2024-02-30) are rejected, not normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: zero date", ErrBadDate)
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return fmt.Errorf("%w: must be positive", ErrBadAmount)
	}
	return nil
}

// ParseRecord builds a validated Record from the raw text fields of one
// stored row. It is a pure transformation: no I/O, no logging.
func ParseRecord(rawDate, rawCategory, rawAmount, rawDescription string) (Record, error) {
	date, err := ParseDate(rawDate)
	if err != nil {
		return Record{}, err
	}

	category := strings.TrimSpace(rawCategory)
	if category == "" {
		return Record{}, ErrEmptyCategory
	}

	cents, err := ParseDecimalToCents(rawAmount)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Date:        date,
		Category:    category,
		Amount:      Money{Cents: cents},
		Description: strings.TrimSpace(rawDescription),
	}, nil
}

func (r Record) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
