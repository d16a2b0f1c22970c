package dataset

import (
	"errors"
	"math"
	"time"

	"trendlens/internal/model"
)

// Preparation failures. Both mean the run stops before fitting; the caller
// picks the diagnostic from the error value.
var (
	ErrEmptyInput = errors.New("no observations to prepare")
	ErrNoClose    = errors.New("no usable close price in observations")
)

// Prepare converts raw daily bars into a regression-ready dataset: one
// sample per bar carrying the whole-calendar-day offset from the first
// bar's date as the single feature and the close price as the target.
// Bars without a usable close (NaN or non-positive) are skipped; if none
// remain the result is ErrNoClose.
func Prepare(symbol string, bars []model.OHLCV) (*model.Dataset, error) {
	if len(bars) == 0 {
		return nil, ErrEmptyInput
	}

	ds := &model.Dataset{Symbol: symbol}
	var first time.Time
	for _, b := range bars {
		if math.IsNaN(b.Close) || b.Close <= 0 {
			continue
		}
		day := calendarDay(b.Time)
		if len(ds.Samples) == 0 {
			first = day
		}
		elapsed := wholeDays(first, day)
		ds.Samples = append(ds.Samples, model.Sample{
			Date:        day,
			DaysElapsed: elapsed,
			Close:       b.Close,
		})
		ds.X = append(ds.X, float64(elapsed))
		ds.Y = append(ds.Y, b.Close)
	}

	if len(ds.Samples) == 0 {
		return nil, ErrNoClose
	}
	return ds, nil
}

// calendarDay drops the time-of-day, keeping only the calendar date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// wholeDays is the integer calendar-day difference between two midnights.
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
