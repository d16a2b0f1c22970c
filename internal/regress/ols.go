package regress

import (
	"errors"
	"fmt"
	"math"

	"github.com/sajari/regression"

	"trendlens/internal/model"
)

// Fit preconditions the caller must treat as aborting the run.
var (
	ErrInsufficientData = errors.New("need at least two samples to fit a line")
	ErrZeroVariance     = errors.New("feature has zero variance, fit is undefined")
)

// Fit computes the ordinary least squares line through (x, y) and returns
// the model together with per-sample predictions and r-squared.
//
// Guards run before the solver is invoked: fewer than two samples is
// ErrInsufficientData, a constant feature is ErrZeroVariance. A constant
// target is not an error; it yields a flat line and a NaN r-squared.
// Exactly two samples are fitted in closed form; the library solver takes
// over from three.
func Fit(x, y []float64) (*model.Fit, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched inputs: %d features vs %d targets", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, ErrInsufficientData
	}
	if variance(x) == 0 {
		return nil, ErrZeroVariance
	}

	fit := &model.Fit{Predictions: make([]float64, len(x))}

	if len(x) == 2 {
		// The library wants numVars+2 observations, so two points are
		// solved in closed form: slope = Cov(x,y)/Var(x).
		fit.Slope = covariance(x, y) / variance(x)
		fit.Intercept = mean(y) - fit.Slope*mean(x)
		for i, xi := range x {
			fit.Predictions[i] = fit.Predict(xi)
		}
	} else {
		r := new(regression.Regression)
		r.SetObserved("close")
		r.SetVar(0, "days")
		for i := range x {
			r.Train(regression.DataPoint(y[i], []float64{x[i]}))
		}
		if err := r.Run(); err != nil {
			return nil, fmt.Errorf("run regression: %w", err)
		}
		fit.Intercept = r.Coeff(0)
		fit.Slope = r.Coeff(1)
		for i, xi := range x {
			p, err := r.Predict([]float64{xi})
			if err != nil {
				return nil, fmt.Errorf("predict: %w", err)
			}
			fit.Predictions[i] = p
		}
	}

	fit.RSquared = rSquared(y, fit.Predictions)

	return fit, nil
}

// rSquared is 1 - SSres/SStot, or NaN when the target is constant.
func rSquared(y, pred []float64) float64 {
	m := mean(y)
	var ssRes, ssTot float64
	for i := range y {
		r := y[i] - pred[i]
		ssRes += r * r
		d := y[i] - m
		ssTot += d * d
	}
	if ssTot == 0 {
		return math.NaN()
	}
	return 1 - ssRes/ssTot
}

func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func variance(v []float64) float64 {
	m := mean(v)
	var ss float64
	for _, x := range v {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(v))
}

func covariance(x, y []float64) float64 {
	mx, my := mean(x), mean(y)
	var s float64
	for i := range x {
		s += (x[i] - mx) * (y[i] - my)
	}
	return s / float64(len(x))
}
