package pipeline

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendlens/internal/collector"
	"trendlens/internal/config"
	"trendlens/internal/model"
	"trendlens/internal/recorder"
)

// captureRecorder remembers every record instead of persisting it.
type captureRecorder struct {
	records []*recorder.RunRecord
}

func (c *captureRecorder) RecordRun(r *recorder.RunRecord) error {
	c.records = append(c.records, r)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg.DataSource.Symbol = "BTC-USD"
	cfg.Output.ChartPath = filepath.Join(t.TempDir(), "trend.html")
	return cfg
}

func linearBars(closes []float64) []model.OHLCV {
	d0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: d0.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 1}
	}
	return bars
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	col := collector.NewCollector(
		&collector.MockFetcher{Bars: linearBars([]float64{100, 102, 104, 106, 108})}, "BTC-USD")
	rec := &captureRecorder{}
	var out bytes.Buffer

	require.NoError(t, Run(cfg, col, rec, &out))

	// summary printed
	assert.Contains(t, out.String(), "slope:     $2.00 per day")
	assert.Contains(t, out.String(), "r_squared: 1.0000")

	// chart written
	info, err := os.Stat(cfg.Output.ChartPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// run recorded with the fitted coefficients
	require.Len(t, rec.records, 1)
	r := rec.records[0]
	assert.Equal(t, "BTC-USD", r.Symbol)
	assert.Equal(t, 5, r.SampleCount)
	assert.InDelta(t, 2.0, r.Slope, 1e-6)
	assert.InDelta(t, 100.0, r.Intercept, 1e-6)
	assert.InDelta(t, 1.0, r.RSquared, 1e-9)
	assert.Equal(t, 100.0, r.FirstClose)
	assert.Equal(t, 108.0, r.LastClose)
}

func TestRun_EmptyFetchTerminatesEarly(t *testing.T) {
	cfg := testConfig(t)
	col := collector.NewCollector(&collector.MockFetcher{}, "NOPE-USD")
	rec := &captureRecorder{}
	var out bytes.Buffer

	require.NoError(t, Run(cfg, col, rec, &out))

	assert.Empty(t, out.String())
	assert.Empty(t, rec.records)
	_, err := os.Stat(cfg.Output.ChartPath)
	assert.True(t, os.IsNotExist(err), "no partial chart may be written")
}

func TestRun_TwoObservationsFit(t *testing.T) {
	cfg := testConfig(t)
	col := collector.NewCollector(
		&collector.MockFetcher{Bars: linearBars([]float64{100, 105})}, "BTC-USD")
	rec := &captureRecorder{}
	var out bytes.Buffer

	require.NoError(t, Run(cfg, col, rec, &out))

	require.Len(t, rec.records, 1)
	assert.Equal(t, 2, rec.records[0].SampleCount)
	assert.InDelta(t, 5.0, rec.records[0].Slope, 1e-6)
	assert.InDelta(t, 100.0, rec.records[0].Intercept, 1e-6)
	assert.Contains(t, out.String(), "2 trading days")
}

func TestRun_SingleObservationIsInsufficient(t *testing.T) {
	cfg := testConfig(t)
	col := collector.NewCollector(
		&collector.MockFetcher{Bars: linearBars([]float64{100})}, "BTC-USD")
	rec := &captureRecorder{}
	var out bytes.Buffer

	require.NoError(t, Run(cfg, col, rec, &out))

	assert.Empty(t, out.String())
	assert.Empty(t, rec.records)
}

func TestRun_ConstantClosesCompleteWithUndefinedR2(t *testing.T) {
	cfg := testConfig(t)
	col := collector.NewCollector(
		&collector.MockFetcher{Bars: linearBars([]float64{250, 250, 250, 250})}, "BTC-USD")
	rec := &captureRecorder{}
	var out bytes.Buffer

	require.NoError(t, Run(cfg, col, rec, &out))

	assert.Contains(t, out.String(), "undefined (constant price series)")
	require.Len(t, rec.records, 1)
	assert.InDelta(t, 0.0, rec.records[0].Slope, 1e-9)
	assert.InDelta(t, 250.0, rec.records[0].Intercept, 1e-9)
	assert.True(t, math.IsNaN(rec.records[0].RSquared))
}

func TestRun_UnusableClosesTerminateEarly(t *testing.T) {
	cfg := testConfig(t)
	bars := linearBars([]float64{100, 102})
	for i := range bars {
		bars[i].Close = math.NaN()
	}
	col := collector.NewCollector(&collector.MockFetcher{Bars: bars}, "BTC-USD")
	rec := &captureRecorder{}
	var out bytes.Buffer

	require.NoError(t, Run(cfg, col, rec, &out))
	assert.Empty(t, rec.records)
}
