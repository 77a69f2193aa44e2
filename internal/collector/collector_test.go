package collector

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"BacktestDesk/internal/model"
)

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func seeded(seed int64, interval model.TimeInterval) *RandomWalkFetcher {
	f := NewSeededFetcher(seed, DefaultBasePrice, interval)
	f.Now = func() time.Time { return fixedNow }
	return f
}

func TestRandomWalk_Deterministic(t *testing.T) {
	a, err := seeded(42, model.Interval1d).FetchBars("BTCUSD", 90)
	require.NoError(t, err)
	b, err := seeded(42, model.Interval1d).FetchBars("BTCUSD", 90)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := seeded(43, model.Interval1d).FetchBars("BTCUSD", 90)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomWalk_BarShape(t *testing.T) {
	bars, err := seeded(7, model.Interval1d).FetchBars("BTCUSD", 200)
	require.NoError(t, err)
	require.Len(t, bars, 200)

	for i, b := range bars {
		assert.GreaterOrEqual(t, b.High, b.Open, "bar %d", i)
		assert.GreaterOrEqual(t, b.High, b.Close, "bar %d", i)
		assert.LessOrEqual(t, b.Low, b.Open, "bar %d", i)
		assert.LessOrEqual(t, b.Low, b.Close, "bar %d", i)
		assert.GreaterOrEqual(t, b.Volume, int64(1_000_000), "bar %d", i)
		assert.Less(t, b.Volume, int64(11_000_000), "bar %d", i)
		if i > 0 {
			assert.Less(t, bars[i-1].Time, b.Time, "labels must increase")
		}
	}
	assert.Equal(t, "2023-12-13", bars[0].Time)
	assert.Equal(t, "2024-06-29", bars[len(bars)-1].Time)
}

func TestRandomWalk_IntradayLabels(t *testing.T) {
	bars, err := seeded(1, model.Interval15m).FetchBars("BTCUSD", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-30 11:00", "2024-06-30 11:15", "2024-06-30 11:30", "2024-06-30 11:45"},
		[]string{bars[0].Time, bars[1].Time, bars[2].Time, bars[3].Time})
}

func TestGenerateBars_FirstBarFollowsDraws(t *testing.T) {
	bars := GenerateBars(rand.New(rand.NewSource(3)), fixedNow, model.Interval1d, 1, 100)

	r := rand.New(rand.NewSource(3))
	vol := r.Float64() * 0.05
	trend := -1.0
	if r.Float64() > 0.5 {
		trend = 1
	}
	open := 100 + (r.Float64()-0.5)*100*vol
	cl := open + trend*r.Float64()*100*vol

	require.Len(t, bars, 1)
	assert.InDelta(t, open, bars[0].Open, 0.005)
	assert.InDelta(t, cl, bars[0].Close, 0.005)
	assert.Equal(t, "2024-06-30", bars[0].Time)
}

func TestRandomWalk_InvalidArgs(t *testing.T) {
	f := seeded(1, model.Interval1d)
	_, err := f.FetchBars("X", 0)
	assert.Error(t, err)

	f.BasePrice = 0
	_, err = f.FetchBars("X", 10)
	assert.Error(t, err)

	_, err = seeded(1, "2d").FetchBars("X", 10)
	assert.Error(t, err)
}

func TestStaticFetcher_TrimsToCount(t *testing.T) {
	s := &StaticFetcher{Bars: []model.PriceBar{{Close: 1}, {Close: 2}, {Close: 3}}}
	bars, err := s.FetchBars("X", 2)
	require.NoError(t, err)
	assert.Equal(t, []model.PriceBar{{Close: 2}, {Close: 3}}, bars)

	bars[0].Close = 99
	assert.Equal(t, 2.0, s.Bars[1].Close, "returned slice must be a copy")
}

type recordingObserver struct {
	types []model.IndicatorType
	errs  int
}

func (r *recordingObserver) ObserveIndicator(t model.IndicatorType, _ time.Duration, err error) {
	r.types = append(r.types, t)
	if err != nil {
		r.errs++
	}
}

func TestCollect_EnabledIndicatorsOnly(t *testing.T) {
	obs := &recordingObserver{}
	c := NewCollector(seeded(5, model.Interval1d), "BTCUSD", model.Interval1d, 90, model.DefaultIndicators(), nil)
	c.Observer = obs
	c.Now = func() time.Time { return fixedNow }

	snap, err := c.Collect()
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "BTCUSD", snap.Symbol)
	assert.Equal(t, fixedNow, snap.CreatedAt)
	require.Len(t, snap.Bars, 90)
	assert.Equal(t, snap.Bars[89].Close, snap.Stats.CurrentPrice)

	require.Len(t, snap.Results, 2)
	require.NotNil(t, snap.Readout)
	assert.Len(t, snap.Readout.Items, 2)
	assert.Equal(t, "sma", snap.Results[0].ID)
	assert.Equal(t, "rsi", snap.Results[1].ID)
	assert.Equal(t, []model.IndicatorType{model.IndicatorSMA, model.IndicatorRSI}, obs.types)
	for _, r := range snap.Results {
		for _, l := range r.Lines {
			assert.Len(t, l.Values, 90)
		}
	}
}

func TestCollect_FailingIndicatorIsSkipped(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	obs := &recordingObserver{}
	inds := []model.Indicator{
		{ID: "sma", Type: model.IndicatorSMA, Enabled: true, Period: -3},
		{ID: "vwap", Type: model.IndicatorVWAP, Enabled: true},
	}
	c := NewCollector(seeded(5, model.Interval1d), "BTCUSD", model.Interval1d, 30, inds, zap.New(core))
	c.Observer = obs

	snap, err := c.Collect()
	require.NoError(t, err)
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "vwap", snap.Results[0].ID)
	assert.Equal(t, 1, obs.errs)
	assert.Equal(t, 1, logs.FilterMessage("indicator calculation failed, skipping").Len())
}

func TestCollect_FetchError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCollector(&StaticFetcher{Err: boom}, "X", model.Interval1d, 10, nil, nil)
	_, err := c.Collect()
	assert.ErrorIs(t, err, boom)

	c = NewCollector(&StaticFetcher{}, "X", model.Interval1d, 10, nil, nil)
	_, err = c.Collect()
	assert.Error(t, err)
}
