package calculator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSI_SimpleWindow(t *testing.T) {
	bars := barsFromCloses(100, 102, 101, 105, 103)
	rsi, err := RSI(bars, 3)
	require.NoError(t, err)
	// window at 3: gains 2,0,4 losses 0,1,0 -> rs 6
	// window at 4: gains 0,4,0 losses 1,0,2 -> rs 4/3
	assert.Equal(t, []float64{50, 50, 50, 85.71, 57.14}, rsi)
}

func TestRSI_SingleBar(t *testing.T) {
	rsi, err := RSI(barsFromCloses(42), DefaultRSIPeriod)
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, rsi)
}

func TestRSI_FlatSeriesSaturates(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}
	rsi, err := RSI(barsFromCloses(closes...), 14)
	require.NoError(t, err)
	require.Len(t, rsi, 20)
	for i := 0; i < 14; i++ {
		assert.Equal(t, 50.0, rsi[i], "index %d", i)
	}
	for i := 14; i < 20; i++ {
		assert.Equal(t, 100.0, rsi[i], "index %d", i)
	}
}

func TestRSI_StrictlyFalling(t *testing.T) {
	rsi, err := RSI(barsFromCloses(10, 9, 8, 7, 6), 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 50, 0, 0, 0}, rsi)
}

func TestRSI_ShortSeriesIsAllSentinel(t *testing.T) {
	rsi, err := RSI(barsFromCloses(1, 2, 3), 14)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 50, 50}, rsi)
}

func TestRSI_BoundedAndAligned(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	closes := make([]float64, 200)
	p := 100.0
	for i := range closes {
		p += (r.Float64() - 0.5) * 4
		closes[i] = p
	}
	bars := barsFromCloses(closes...)
	for _, period := range []int{1, 2, 5, 14, 50, 250} {
		rsi, err := RSI(bars, period)
		require.NoError(t, err)
		require.Len(t, rsi, len(bars))
		for i, v := range rsi {
			assert.GreaterOrEqual(t, v, 0.0, "period %d index %d", period, i)
			assert.LessOrEqual(t, v, 100.0, "period %d index %d", period, i)
		}
	}
}

func TestRSI_InvalidInput(t *testing.T) {
	_, err := RSI(nil, 14)
	assert.ErrorIs(t, err, ErrNoBars)
	_, err = RSI(barsFromCloses(1, 2), 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
