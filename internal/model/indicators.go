package model

import (
	"fmt"
	"math"
)

// IndicatorType names a supported technical indicator.
type IndicatorType string

const (
	IndicatorSMA  IndicatorType = "SMA"
	IndicatorEMA  IndicatorType = "EMA"
	IndicatorRSI  IndicatorType = "RSI"
	IndicatorMACD IndicatorType = "MACD"
	IndicatorBB   IndicatorType = "BB"
	IndicatorVWAP IndicatorType = "VWAP"
)

// Valid reports whether t is a known indicator type.
func (t IndicatorType) Valid() bool {
	switch t {
	case IndicatorSMA, IndicatorEMA, IndicatorRSI, IndicatorMACD, IndicatorBB, IndicatorVWAP:
		return true
	}
	return false
}

// Description returns the human readable name and a short description.
func (t IndicatorType) Description() (name, desc string) {
	switch t {
	case IndicatorSMA:
		return "Simple Moving Average", "Trend following indicator"
	case IndicatorEMA:
		return "Exponential Moving Average", "Weighted trend indicator"
	case IndicatorRSI:
		return "Relative Strength Index", "Momentum oscillator"
	case IndicatorMACD:
		return "MACD", "Trend & momentum"
	case IndicatorBB:
		return "Bollinger Bands", "Volatility indicator"
	case IndicatorVWAP:
		return "VWAP", "Volume weighted price"
	}
	return string(t), ""
}

// Indicator is one configurable entry of the indicator panel.
// Period is zero for indicators that do not take one.
type Indicator struct {
	ID      string        `yaml:"id"`
	Type    IndicatorType `yaml:"type"`
	Enabled bool          `yaml:"enabled"`
	Period  int           `yaml:"period,omitempty"`
	Color   string        `yaml:"color,omitempty"`
}

// Label renders the indicator as e.g. "SMA(20)".
func (i Indicator) Label() string {
	if i.Period > 0 {
		return fmt.Sprintf("%s(%d)", i.Type, i.Period)
	}
	return string(i.Type)
}

// DefaultIndicators returns the stock indicator panel.
func DefaultIndicators() []Indicator {
	return []Indicator{
		{ID: "sma", Type: IndicatorSMA, Enabled: true, Period: 20},
		{ID: "ema", Type: IndicatorEMA, Enabled: false, Period: 12},
		{ID: "rsi", Type: IndicatorRSI, Enabled: true, Period: 14},
		{ID: "macd", Type: IndicatorMACD, Enabled: false},
		{ID: "bb", Type: IndicatorBB, Enabled: false, Period: 20},
		{ID: "vwap", Type: IndicatorVWAP, Enabled: false},
	}
}

// SeriesLine is one named output line of an indicator, aligned with the bars.
type SeriesLine struct {
	Name   string
	Values []float64
}

// Last returns the final value of the line, or NaN when empty.
func (l SeriesLine) Last() float64 {
	if len(l.Values) == 0 {
		return math.NaN()
	}
	return l.Values[len(l.Values)-1]
}

// IndicatorResult holds the computed lines of one indicator.
type IndicatorResult struct {
	ID     string
	Type   IndicatorType
	Period int
	Lines  []SeriesLine
}

// Line returns the named line, or nil.
func (r *IndicatorResult) Line(name string) *SeriesLine {
	for i := range r.Lines {
		if r.Lines[i].Name == name {
			return &r.Lines[i]
		}
	}
	return nil
}
