package notifier

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BacktestDesk/internal/model"
)

func TestFormatSnapshot(t *testing.T) {
	snap := &model.Snapshot{
		Symbol:    "BTCUSD",
		Interval:  model.Interval4h,
		CreatedAt: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
		Stats: model.MarketStats{
			CurrentPrice: 42100.5, Change: 100.5, ChangePercent: 0.24, IsUp: true,
			WindowHigh: 43000, WindowLow: 41000, AvgVolume: 123456, Window: 30, Position: 0.55,
		},
		Results: []model.IndicatorResult{
			{ID: "rsi", Type: model.IndicatorRSI, Period: 14,
				Lines: []model.SeriesLine{{Name: "rsi", Values: []float64{50, 88.12}}}},
			{ID: "vwap", Type: model.IndicatorVWAP,
				Lines: []model.SeriesLine{{Name: "vwap", Values: []float64{41999.99}}}},
		},
		Readout: &model.Readout{
			Items:      []model.ReadoutItem{{Name: "RSI(14)", Value: 88.12, Commentary: "overbought"}},
			WarningMsg: "RSI above 85: extremely overbought",
		},
	}

	out := FormatSnapshot(snap)
	assert.Contains(t, out, "BTCUSD | 4 Hour | 2024-06-30 12:00")
	assert.Contains(t, out, "Price: 42100.50 ▲ +100.50 (+0.24%)")
	assert.Contains(t, out, "30-bar high: 43000.00 | low: 41000.00")
	assert.Contains(t, out, "Range position: 55%")
	assert.Contains(t, out, "RSI(14): rsi=88.12")
	assert.Contains(t, out, "VWAP: vwap=41999.99")
	assert.Contains(t, out, "RSI(14) 88.12: overbought")
	assert.Contains(t, out, "⚠️ RSI above 85")
}

func TestFormatSnapshot_Nil(t *testing.T) {
	assert.Empty(t, FormatSnapshot(nil))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	require.NoError(t, n.Send("first"))
	require.NoError(t, n.Send("second\n"))
	assert.Equal(t, "first\n\nsecond\n\n", buf.String())

	assert.Error(t, NewWriterNotifier(failingWriter{}).Send("x"))
}
