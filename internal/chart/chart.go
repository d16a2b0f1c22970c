package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"trendlens/internal/model"
	"trendlens/internal/report"
)

// Render writes an interactive HTML chart: a scatter of actual closes and a
// line of fitted values over the date axis, with the fitted equation and
// r-squared as the on-chart annotation. An optional SMA overlay series is
// drawn when sma is non-nil (NaN positions become gaps).
func Render(w io.Writer, ds *model.Dataset, fit *model.Fit, sma []float64, smaPeriod int) error {
	subtitle := report.Equation(fit)
	if !math.IsNaN(fit.RSquared) {
		subtitle += fmt.Sprintf("  (r² = %.4f)", fit.RSquared)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s daily close", ds.Symbol),
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "price (USD)"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "TrendLens"}),
	)

	dates := make([]string, len(ds.Samples))
	actual := make([]opts.ScatterData, len(ds.Samples))
	fitted := make([]opts.LineData, len(ds.Samples))
	for i, s := range ds.Samples {
		dates[i] = s.Date.Format("2006-01-02")
		actual[i] = opts.ScatterData{Value: s.Close}
		fitted[i] = opts.LineData{Value: fit.Predictions[i]}
	}

	scatter.SetXAxis(dates).AddSeries("close", actual)

	line := charts.NewLine()
	line.SetXAxis(dates).AddSeries("fitted", fitted)

	if sma != nil {
		smaData := make([]opts.LineData, len(sma))
		for i, v := range sma {
			if math.IsNaN(v) {
				smaData[i] = opts.LineData{Value: nil}
			} else {
				smaData[i] = opts.LineData{Value: v}
			}
		}
		line.AddSeries(fmt.Sprintf("sma%d", smaPeriod), smaData)
	}

	scatter.Overlap(line)
	return scatter.Render(w)
}

// RenderFile renders the chart into an HTML file, creating parent
// directories as needed.
func RenderFile(path string, ds *model.Dataset, fit *model.Fit, sma []float64, smaPeriod int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := Render(f, ds, fit, sma, smaPeriod); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
