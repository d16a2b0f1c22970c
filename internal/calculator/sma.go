package calculator

import (
	"errors"
	"math"

	"trendlens/internal/model"
)

// RollingSMA computes the simple moving average of the sample closes over
// the given period, aligned with the input: positions before the window
// fills are NaN so charting layers can leave them blank.
func RollingSMA(samples []model.Sample, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(samples) < period {
		return nil, errors.New("not enough data for SMA calculation")
	}

	out := make([]float64, len(samples))
	sum := 0.0
	for i, s := range samples {
		sum += s.Close
		if i >= period {
			sum -= samples[i-period].Close
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
