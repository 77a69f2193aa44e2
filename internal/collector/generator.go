package collector

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"BacktestDesk/internal/calculator"
	"BacktestDesk/internal/model"
)

// DefaultBasePrice is the starting level of the random walk.
const DefaultBasePrice = 42000

// RandomWalkFetcher generates synthetic OHLCV bars from an injected random
// source. Two fetchers built from the same seed and clock produce identical
// series.
type RandomWalkFetcher struct {
	BasePrice float64
	Interval  model.TimeInterval
	Now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomWalkFetcher creates a generator around rng. rng must not be shared.
func NewRandomWalkFetcher(rng *rand.Rand, basePrice float64, interval model.TimeInterval) *RandomWalkFetcher {
	return &RandomWalkFetcher{
		BasePrice: basePrice,
		Interval:  interval,
		Now:       time.Now,
		rng:       rng,
	}
}

// NewSeededFetcher is a convenience wrapper building the source from seed.
func NewSeededFetcher(seed int64, basePrice float64, interval model.TimeInterval) *RandomWalkFetcher {
	return NewRandomWalkFetcher(rand.New(rand.NewSource(seed)), basePrice, interval)
}

func (f *RandomWalkFetcher) Name() string { return "random-walk" }

// FetchBars generates count bars ending at the current clock. The symbol is
// only a label for the synthetic feed.
func (f *RandomWalkFetcher) FetchBars(_ string, count int) ([]model.PriceBar, error) {
	if count <= 0 {
		return nil, fmt.Errorf("bar count must be positive, got %d", count)
	}
	if f.BasePrice <= 0 {
		return nil, fmt.Errorf("base price must be positive, got %v", f.BasePrice)
	}
	if f.Interval.Duration() == 0 {
		return nil, fmt.Errorf("unsupported interval %q", f.Interval)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	start := stepTime(now().UTC(), f.Interval, -count)
	return GenerateBars(f.rng, start, f.Interval, count, f.BasePrice), nil
}

// GenerateBars runs the random walk: each bar draws a volatility of up to 5%,
// a direction, and wicks of up to half the volatility on either side. OHLC
// values are rounded to cents; the next bar starts from the unrounded close.
func GenerateBars(rng *rand.Rand, start time.Time, interval model.TimeInterval, count int, basePrice float64) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		volatility := rng.Float64() * 0.05
		trend := -1.0
		if rng.Float64() > 0.5 {
			trend = 1
		}

		open := basePrice + (rng.Float64()-0.5)*basePrice*volatility
		closePrice := open + trend*rng.Float64()*basePrice*volatility
		high := math.Max(open, closePrice) + rng.Float64()*basePrice*volatility*0.5
		low := math.Min(open, closePrice) - rng.Float64()*basePrice*volatility*0.5
		volume := int64(math.Floor(rng.Float64()*10_000_000)) + 1_000_000

		bars[i] = model.PriceBar{
			Time:   FormatBarTime(stepTime(start, interval, i), interval),
			Open:   calculator.Round2(open),
			High:   calculator.Round2(high),
			Low:    calculator.Round2(low),
			Close:  calculator.Round2(closePrice),
			Volume: volume,
		}
		basePrice = closePrice
	}
	return bars
}

// FormatBarTime renders a bar label: dates for daily and coarser intervals,
// minutes for intraday ones.
func FormatBarTime(t time.Time, interval model.TimeInterval) string {
	if interval.Intraday() {
		return t.Format("2006-01-02 15:04")
	}
	return t.Format("2006-01-02")
}

func stepTime(t time.Time, interval model.TimeInterval, n int) time.Time {
	switch interval {
	case model.Interval1d:
		return t.AddDate(0, 0, n)
	case model.Interval1w:
		return t.AddDate(0, 0, 7*n)
	case model.Interval1M:
		return t.AddDate(0, n, 0)
	default:
		d := interval.Duration()
		return t.Truncate(d).Add(time.Duration(n) * d)
	}
}
