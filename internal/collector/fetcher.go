package collector

import (
	"errors"
	"time"

	"trendlens/internal/model"
)

// ErrNoData reports that the provider answered but had no rows for the
// requested symbol and range (unknown ticker, no trading activity, range in
// the future). Transport and decode failures are returned as distinct
// wrapped errors so callers can tell the two apart with errors.Is.
var ErrNoData = errors.New("no data for symbol in range")

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	// FetchDailyBars returns daily OHLCV bars for symbol between start and
	// end (inclusive), sorted ascending by date.
	FetchDailyBars(symbol string, start, end time.Time) ([]model.OHLCV, error)
	Name() string
}
