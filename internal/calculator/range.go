package calculator

import (
	"errors"
	"fmt"
	"math"

	"BacktestDesk/internal/model"
)

// DefaultStatsWindow is the number of trailing bars the stats panel covers.
const DefaultStatsWindow = 30

// WindowRange scans the most recent window bars and returns the high and low.
func WindowRange(bars []model.PriceBar, window int) (high, low float64, err error) {
	if err := checkInput(bars, window); err != nil {
		return 0, 0, err
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}

// AverageVolume returns the mean volume of the most recent window bars.
func AverageVolume(bars []model.PriceBar, window int) (float64, error) {
	if err := checkInput(bars, window); err != nil {
		return 0, err
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	var sum float64
	for i := start; i < len(bars); i++ {
		sum += float64(bars[i].Volume)
	}
	return sum / float64(len(bars)-start), nil
}

// RangePosition returns where price sits within [low, high] (0.0~1.0).
func RangePosition(price, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (price - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}

// Stats summarises the latest bar against its predecessor and the trailing window.
func Stats(bars []model.PriceBar, window int) (model.MarketStats, error) {
	if err := checkInput(bars, window); err != nil {
		return model.MarketStats{}, err
	}

	latest := bars[len(bars)-1]
	st := model.MarketStats{
		CurrentPrice: latest.Close,
		PrevClose:    latest.Close,
		IsUp:         true,
		Window:       window,
	}
	if len(bars) > 1 {
		st.PrevClose = bars[len(bars)-2].Close
		st.Change = Round2(latest.Close - st.PrevClose)
		if st.PrevClose != 0 {
			st.ChangePercent = Round2((latest.Close - st.PrevClose) / st.PrevClose * 100)
		}
		st.IsUp = latest.Close >= st.PrevClose
	}

	high, low, err := WindowRange(bars, window)
	if err != nil {
		return model.MarketStats{}, fmt.Errorf("window range: %w", err)
	}
	st.WindowHigh, st.WindowLow = high, low

	if st.AvgVolume, err = AverageVolume(bars, window); err != nil {
		return model.MarketStats{}, fmt.Errorf("average volume: %w", err)
	}
	if st.Position, err = RangePosition(latest.Close, high, low); err != nil {
		// Malformed bars (high below low); report the midpoint instead of failing.
		st.Position = 0.5
	}
	return st, nil
}
