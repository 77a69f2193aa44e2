package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BacktestDesk/internal/model"
)

func barsFromCloses(closes ...float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = model.PriceBar{Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	return bars
}

func TestSMA_Scenario(t *testing.T) {
	bars := barsFromCloses(100, 102, 101, 105, 103)
	sma, err := SMA(bars, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 102, 101, 102.67, 103}, sma)
}

func TestSMA_LeadingPositionsCarryClose(t *testing.T) {
	bars := barsFromCloses(10, 20, 30, 40, 50, 60)
	for _, period := range []int{1, 2, 4, 6, 10} {
		sma, err := SMA(bars, period)
		require.NoError(t, err)
		require.Len(t, sma, len(bars))
		for i := 0; i < period-1 && i < len(bars); i++ {
			assert.Equal(t, bars[i].Close, sma[i], "period %d index %d", period, i)
		}
	}
}

func TestSMA_PeriodOneIsClose(t *testing.T) {
	bars := barsFromCloses(1.234, 5.678)
	sma, err := SMA(bars, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.23, 5.68}, sma)
}

func TestEMA_SeedAndRecurrence(t *testing.T) {
	bars := barsFromCloses(10, 11, 12)
	ema, err := EMA(bars, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10.5, 11.25}, ema)
}

func TestEMA_RoundedValueFeedsForward(t *testing.T) {
	bars := barsFromCloses(42000.13, 41877.5, 42210.91, 42555.55, 41999.99, 42001.01, 43012.77)
	period := 5
	ema, err := EMA(bars, period)
	require.NoError(t, err)
	require.Len(t, ema, len(bars))

	assert.Equal(t, bars[0].Close, ema[0])
	m := 2 / float64(period+1)
	for i := 1; i < len(bars); i++ {
		want := Round2((bars[i].Close-ema[i-1])*m + ema[i-1])
		assert.Equal(t, want, ema[i], "index %d", i)
	}
}

func TestMovingAverages_SingleBar(t *testing.T) {
	bars := barsFromCloses(123.45)

	sma, err := SMA(bars, 20)
	require.NoError(t, err)
	assert.Equal(t, []float64{123.45}, sma)

	ema, err := EMA(bars, 12)
	require.NoError(t, err)
	assert.Equal(t, []float64{123.45}, ema)
}

func TestMovingAverages_InvalidInput(t *testing.T) {
	_, err := SMA(nil, 3)
	assert.ErrorIs(t, err, ErrNoBars)
	_, err = EMA([]model.PriceBar{}, 3)
	assert.ErrorIs(t, err, ErrNoBars)

	bars := barsFromCloses(1, 2, 3)
	_, err = SMA(bars, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = EMA(bars, -2)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
