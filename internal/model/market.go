package model

import "time"

// PriceBar represents a single OHLCV observation. Time is an opaque,
// chronologically ordered label such as "2024-03-01".
type PriceBar struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// PriceSeries holds raw bars for one symbol at one interval.
type PriceSeries struct {
	Symbol      string
	Interval    TimeInterval
	Bars        []PriceBar
	GeneratedAt time.Time
}

// MarketStats is the summary shown above the chart.
type MarketStats struct {
	CurrentPrice  float64
	PrevClose     float64
	Change        float64
	ChangePercent float64
	IsUp          bool
	WindowHigh    float64
	WindowLow     float64
	AvgVolume     float64
	Window        int
	Position      float64 // 0.0 ~ 1.0 within [WindowLow, WindowHigh]
}

// Snapshot is one full evaluation of a price series.
type Snapshot struct {
	ID        string
	Symbol    string
	Interval  TimeInterval
	Bars      []PriceBar
	Stats     MarketStats
	Results   []IndicatorResult
	Readout   *Readout
	CreatedAt time.Time
}

// Result returns the indicator result with the given ID, or nil.
func (s *Snapshot) Result(id string) *IndicatorResult {
	for i := range s.Results {
		if s.Results[i].ID == id {
			return &s.Results[i]
		}
	}
	return nil
}

// ResultByType returns the first indicator result of the given type, or nil.
func (s *Snapshot) ResultByType(t IndicatorType) *IndicatorResult {
	for i := range s.Results {
		if s.Results[i].Type == t {
			return &s.Results[i]
		}
	}
	return nil
}
