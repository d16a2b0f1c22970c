package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"trendlens/internal/calculator"
	"trendlens/internal/chart"
	"trendlens/internal/collector"
	"trendlens/internal/config"
	"trendlens/internal/dataset"
	"trendlens/internal/recorder"
	"trendlens/internal/regress"
	"trendlens/internal/report"
)

// smaPeriod is the window of the optional moving-average chart overlay.
const smaPeriod = 20

// Run executes one fetch → prepare → fit → report → plot → record pass.
//
// Data-shaped failures (provider has nothing, unusable bars, fewer than two
// samples, degenerate fit) end the run early and cleanly: the reason is
// logged and Run returns nil, so the process still exits zero and no
// partial chart is written. Only render and persistence failures surface as
// errors.
func Run(cfg *config.Config, col *collector.Collector, rec recorder.Recorder, out io.Writer) error {
	end := time.Now()

	series, err := col.Collect(cfg.Start, end)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) {
			log.Warn().Err(err).Msg("provider returned no rows, aborting run")
		} else {
			log.Warn().Err(err).Msg("fetch failed, aborting run")
		}
		return nil
	}
	log.Info().Int("bars", len(series.Bars)).Str("symbol", series.Symbol).Msg("fetched daily bars")

	ds, err := dataset.Prepare(series.Symbol, series.Bars)
	if err != nil {
		log.Warn().Err(err).Msg("dataset preparation failed, aborting run")
		return nil
	}
	if len(ds.Samples) < 2 {
		log.Warn().Int("samples", len(ds.Samples)).Msg("insufficient data for a linear fit, aborting run")
		return nil
	}

	fit, err := regress.Fit(ds.X, ds.Y)
	if err != nil {
		log.Warn().Err(err).Msg("regression fit failed, aborting run")
		return nil
	}

	fmt.Fprint(out, report.Summary(ds, fit))

	sma, err := calculator.RollingSMA(ds.Samples, smaPeriod)
	if err != nil {
		log.Debug().Err(err).Msg("skipping SMA overlay")
		sma = nil
	}

	if err := chart.RenderFile(cfg.Output.ChartPath, ds, fit, sma, smaPeriod); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	log.Info().Str("path", cfg.Output.ChartPath).Msg("chart written")

	first := ds.Samples[0]
	last := ds.Samples[len(ds.Samples)-1]
	if err := rec.RecordRun(&recorder.RunRecord{
		Symbol:      ds.Symbol,
		Source:      col.Fetcher.Name(),
		Start:       first.Date,
		End:         last.Date,
		SampleCount: len(ds.Samples),
		Slope:       fit.Slope,
		Intercept:   fit.Intercept,
		RSquared:    fit.RSquared,
		FirstClose:  first.Close,
		LastClose:   last.Close,
		ChartPath:   cfg.Output.ChartPath,
	}); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	return nil
}
