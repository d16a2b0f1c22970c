package model

import "time"

// Sample is one regression-ready observation derived from a daily bar.
type Sample struct {
	Date        time.Time
	DaysElapsed int // whole calendar days since the first sample's date
	Close       float64
}

// Dataset is the prepared input for the regression fitter.
type Dataset struct {
	Symbol  string
	Samples []Sample
	X       []float64 // days elapsed, one per sample
	Y       []float64 // close price, one per sample
}

// SpanDays returns the calendar-day span covered by the samples.
func (d *Dataset) SpanDays() int {
	if len(d.Samples) == 0 {
		return 0
	}
	return d.Samples[len(d.Samples)-1].DaysElapsed
}

// Fit holds the fitted linear model and its derived statistics.
// RSquared is NaN when the target has zero variance.
type Fit struct {
	Slope       float64
	Intercept   float64
	Predictions []float64
	RSquared    float64
}

// Predict evaluates the fitted line at the given elapsed-days value.
func (f *Fit) Predict(daysElapsed float64) float64 {
	return f.Slope*daysElapsed + f.Intercept
}
