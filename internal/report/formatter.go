package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"trendlens/internal/model"
)

// FitQuality maps r-squared to a qualitative annotation. Mid-band fits get
// no annotation; a NaN (constant target) is called out explicitly.
func FitQuality(r2 float64) string {
	switch {
	case math.IsNaN(r2):
		return "undefined (constant price series)"
	case r2 < 0.5:
		return "weak linear fit"
	case r2 > 0.8:
		return "strong linear fit"
	default:
		return ""
	}
}

// Summary formats the fitted model into a console report block.
func Summary(ds *model.Dataset, fit *model.Fit) string {
	var b strings.Builder

	first := ds.Samples[0]
	last := ds.Samples[len(ds.Samples)-1]

	b.WriteString(fmt.Sprintf("📈 TrendLens | %s\n", ds.Symbol))
	b.WriteString(fmt.Sprintf("range:     %s → %s\n",
		first.Date.Format("2006-01-02"), last.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("samples:   %d trading days over %d calendar days\n",
		len(ds.Samples), ds.SpanDays()))
	b.WriteString(fmt.Sprintf("slope:     %s per day\n", money(fit.Slope)))
	b.WriteString(fmt.Sprintf("intercept: %s\n", money(fit.Intercept)))
	b.WriteString(fmt.Sprintf("equation:  price = %s*days + %s\n",
		coeff(fit.Slope), coeff(fit.Intercept)))

	if math.IsNaN(fit.RSquared) {
		b.WriteString(fmt.Sprintf("r_squared: %s\n", FitQuality(fit.RSquared)))
	} else if q := FitQuality(fit.RSquared); q != "" {
		b.WriteString(fmt.Sprintf("r_squared: %.4f (%s)\n", fit.RSquared, q))
	} else {
		b.WriteString(fmt.Sprintf("r_squared: %.4f\n", fit.RSquared))
	}

	return b.String()
}

// Equation returns the short one-line form used as a chart annotation.
func Equation(fit *model.Fit) string {
	return fmt.Sprintf("price = %s*days + %s", coeff(fit.Slope), coeff(fit.Intercept))
}

func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func coeff(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}
