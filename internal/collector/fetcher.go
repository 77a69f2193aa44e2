package collector

import "BacktestDesk/internal/model"

// Fetcher defines the interface for obtaining price bars.
type Fetcher interface {
	FetchBars(symbol string, count int) ([]model.PriceBar, error)
	Name() string
}
