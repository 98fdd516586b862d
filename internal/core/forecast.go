package core

import (
	"fmt"
	"time"
)

// Prediction is the forecast for the month after the last one in the
// series, with the fitted line's coefficients for transparency.
type Prediction struct {
	Year      int
	Month     int // 1-12
	Slope     float64
	Intercept float64
	Amount    float64
}

// Label renders the predicted month as "YYYY-MM".
func (p Prediction) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// PredictNext fits an ordinary least-squares line over the monthly totals,
// with x = the ordinal index of each month (0, 1, 2, ...) and y = that
// month's total in currency units, and evaluates it at x = len(months).
//
// Fewer than two months means zero variance in x, so the fit is undefined
// and ErrInsufficientData is returned. A negative prediction is passed
// through unclamped; callers present it as-is.
func PredictNext(months []MonthTotal) (Prediction, error) {
	if len(months) < 2 {
		return Prediction{}, fmt.Errorf("%w: need at least 2 months, have %d", ErrInsufficientData, len(months))
	}

	n := float64(len(months))
	var sumX, sumY, sumXY, sumX2 float64
	for i, m := range months {
		x := float64(i)
		y := m.Total.Units()
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	// x values are distinct indices, so the denominator is positive here.
	denom := n*sumX2 - sumX*sumX
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	last := months[len(months)-1]
	next := time.Date(last.Year, time.Month(last.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	return Prediction{
		Year:      next.Year(),
		Month:     int(next.Month()),
		Slope:     slope,
		Intercept: intercept,
		Amount:    slope*n + intercept,
	}, nil
}
