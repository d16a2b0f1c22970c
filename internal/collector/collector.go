package collector

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"trendlens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, _, _ time.Time) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// GenerateMockBars builds count consecutive daily bars walking away from
// basePrice, anchored so the last bar lands on today.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the price history for one symbol over a date range.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Collect fetches daily bars for the configured symbol between start and
// end. A provider answer with zero rows is reported as ErrNoData; transport
// and decode failures keep their own error chain, so the caller can tell
// "nothing there" from "could not ask".
func (c *Collector) Collect(start, end time.Time) (*model.PriceSeries, error) {
	log.Debug().
		Str("symbol", c.Symbol).
		Str("source", c.Fetcher.Name()).
		Time("start", start).
		Time("end", end).
		Msg("fetching daily bars")

	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", c.Symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s %s..%s", ErrNoData, c.Symbol,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return &model.PriceSeries{
		Symbol:    c.Symbol,
		Start:     start,
		End:       end,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}
