package collector

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"BacktestDesk/internal/calculator"
	"BacktestDesk/internal/model"
	"BacktestDesk/internal/strategy"
)

// StaticFetcher returns a fixed set of bars for development and testing.
type StaticFetcher struct {
	Bars []model.PriceBar
	Err  error
}

func (s *StaticFetcher) Name() string { return "static" }

// FetchBars returns the most recent count bars.
func (s *StaticFetcher) FetchBars(_ string, count int) ([]model.PriceBar, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	bars := s.Bars
	if count > 0 && len(bars) > count {
		bars = bars[len(bars)-count:]
	}
	out := make([]model.PriceBar, len(bars))
	copy(out, bars)
	return out, nil
}

// Observer receives the timing and outcome of each indicator computation.
type Observer interface {
	ObserveIndicator(t model.IndicatorType, elapsed time.Duration, err error)
}

// Collector orchestrates bar fetching and indicator computation.
type Collector struct {
	Fetcher     Fetcher
	Symbol      string
	Interval    model.TimeInterval
	BarCount    int
	StatsWindow int
	Indicators  []model.Indicator
	Observer    Observer
	Log         *zap.Logger
	Now         func() time.Time
}

// NewCollector creates a new Collector computing the enabled entries of indicators.
func NewCollector(fetcher Fetcher, symbol string, interval model.TimeInterval, barCount int, indicators []model.Indicator, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{
		Fetcher:     fetcher,
		Symbol:      symbol,
		Interval:    interval,
		BarCount:    barCount,
		StatsWindow: calculator.DefaultStatsWindow,
		Indicators:  indicators,
		Log:         log,
		Now:         time.Now,
	}
}

// Collect fetches bars, computes stats and all enabled indicators, and
// attaches the readout.
// An indicator that fails is logged and left out of the snapshot.
func (c *Collector) Collect() (*model.Snapshot, error) {
	bars, err := c.Fetcher.FetchBars(c.Symbol, c.BarCount)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch bars: %w", calculator.ErrNoBars)
	}

	stats, err := calculator.Stats(bars, c.StatsWindow)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	snap := &model.Snapshot{
		ID:        uuid.NewString(),
		Symbol:    c.Symbol,
		Interval:  c.Interval,
		Bars:      bars,
		Stats:     stats,
		CreatedAt: c.Now(),
	}

	for _, ind := range c.Indicators {
		if !ind.Enabled {
			continue
		}
		started := time.Now()
		res, err := calculator.Compute(bars, ind)
		if c.Observer != nil {
			c.Observer.ObserveIndicator(ind.Type, time.Since(started), err)
		}
		if err != nil {
			c.Log.Warn("indicator calculation failed, skipping",
				zap.String("indicator", ind.ID),
				zap.String("type", string(ind.Type)),
				zap.Error(err))
			continue
		}
		snap.Results = append(snap.Results, res)
	}
	snap.Readout = strategy.Evaluate(snap)

	c.Log.Debug("snapshot collected",
		zap.String("snapshot_id", snap.ID),
		zap.String("source", c.Fetcher.Name()),
		zap.Int("bars", len(bars)),
		zap.Int("indicators", len(snap.Results)))
	return snap, nil
}
