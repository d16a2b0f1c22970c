package collector

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"trendlens/internal/model"
)

// FinanceGoFetcher implements Fetcher on top of the piquette/finance-go
// chart iterator. It talks to the same Yahoo backend as YahooFetcher but
// goes through the library's typed client instead of raw JSON.
type FinanceGoFetcher struct{}

// NewFinanceGoFetcher creates a new finance-go backed fetcher.
func NewFinanceGoFetcher() *FinanceGoFetcher { return &FinanceGoFetcher{} }

func (f *FinanceGoFetcher) Name() string { return "finance-go" }

func (f *FinanceGoFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	}

	iter := chart.Get(params)

	var bars []model.OHLCV
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go fetch: %w", err)
	}
	return bars, nil
}
