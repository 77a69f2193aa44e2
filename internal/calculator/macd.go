package calculator

import (
	"fmt"

	"BacktestDesk/internal/model"
)

// Standard MACD periods.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACDResult holds the three MACD lines, each aligned with the input bars.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the fast/slow EMA spread, its signal EMA and the histogram.
func MACD(bars []model.PriceBar, fast, slow, signal int) (*MACDResult, error) {
	if err := checkInput(bars, fast); err != nil {
		return nil, err
	}
	if slow <= 0 || signal <= 0 {
		return nil, fmt.Errorf("%w: slow=%d signal=%d must be positive", ErrInvalidPeriod, slow, signal)
	}
	if fast >= slow {
		return nil, fmt.Errorf("%w: fast %d must be below slow %d", ErrInvalidPeriod, fast, slow)
	}

	closes := extractCloses(bars)
	fastEMA := emaOf(closes, fast)
	slowEMA := emaOf(closes, slow)

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = Round2(fastEMA[i] - slowEMA[i])
	}
	sig := emaOf(line, signal)
	hist := make([]float64, len(closes))
	for i := range line {
		hist[i] = Round2(line[i] - sig[i])
	}
	return &MACDResult{MACD: line, Signal: sig, Histogram: hist}, nil
}
