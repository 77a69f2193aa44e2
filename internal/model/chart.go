package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSettings is returned when chart settings fail validation.
var ErrInvalidSettings = errors.New("invalid chart settings")

// ChartType selects how price bars are drawn.
type ChartType string

const (
	ChartCandlestick ChartType = "candlestick"
	ChartLine        ChartType = "line"
	ChartArea        ChartType = "area"
)

// TimeInterval is the bar width.
type TimeInterval string

const (
	Interval1m  TimeInterval = "1m"
	Interval5m  TimeInterval = "5m"
	Interval15m TimeInterval = "15m"
	Interval1h  TimeInterval = "1h"
	Interval4h  TimeInterval = "4h"
	Interval1d  TimeInterval = "1d"
	Interval1w  TimeInterval = "1w"
	Interval1M  TimeInterval = "1M"
)

var intervals = []struct {
	value TimeInterval
	label string
	dur   time.Duration
}{
	{Interval1m, "1 Min", time.Minute},
	{Interval5m, "5 Min", 5 * time.Minute},
	{Interval15m, "15 Min", 15 * time.Minute},
	{Interval1h, "1 Hour", time.Hour},
	{Interval4h, "4 Hour", 4 * time.Hour},
	{Interval1d, "1 Day", 24 * time.Hour},
	{Interval1w, "1 Week", 7 * 24 * time.Hour},
	{Interval1M, "1 Month", 30 * 24 * time.Hour},
}

// Intervals lists every supported interval, finest first.
func Intervals() []TimeInterval {
	out := make([]TimeInterval, len(intervals))
	for i, iv := range intervals {
		out[i] = iv.value
	}
	return out
}

// ParseInterval converts a string such as "15m" into a TimeInterval.
func ParseInterval(s string) (TimeInterval, error) {
	for _, iv := range intervals {
		if string(iv.value) == s {
			return iv.value, nil
		}
	}
	return "", fmt.Errorf("unknown interval %q", s)
}

// Duration returns the nominal bar width. A month is treated as 30 days.
func (t TimeInterval) Duration() time.Duration {
	for _, iv := range intervals {
		if iv.value == t {
			return iv.dur
		}
	}
	return 0
}

// Label returns the display label, e.g. "4 Hour".
func (t TimeInterval) Label() string {
	for _, iv := range intervals {
		if iv.value == t {
			return iv.label
		}
	}
	return string(t)
}

// Intraday reports whether bars are narrower than a day.
func (t TimeInterval) Intraday() bool {
	d := t.Duration()
	return d > 0 && d < 24*time.Hour
}

// TimeRange is an inclusive date window.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ChartSettings is the full chart configuration.
type ChartSettings struct {
	Type       ChartType
	Interval   TimeInterval
	TimeRange  TimeRange
	Indicators []Indicator
}

// DefaultChartSettings returns an area chart of daily bars over the last 90 days.
func DefaultChartSettings(now time.Time) ChartSettings {
	return ChartSettings{
		Type:     ChartArea,
		Interval: Interval1d,
		TimeRange: TimeRange{
			Start: now.AddDate(0, 0, -90),
			End:   now,
		},
		Indicators: DefaultIndicators(),
	}
}

// Validate checks chart type, interval, range and indicator entries.
func (s ChartSettings) Validate() error {
	switch s.Type {
	case ChartCandlestick, ChartLine, ChartArea:
	default:
		return fmt.Errorf("%w: chart type %q", ErrInvalidSettings, s.Type)
	}
	if s.Interval.Duration() == 0 {
		return fmt.Errorf("%w: interval %q", ErrInvalidSettings, s.Interval)
	}
	if !s.TimeRange.Start.IsZero() && !s.TimeRange.End.IsZero() && s.TimeRange.End.Before(s.TimeRange.Start) {
		return fmt.Errorf("%w: time range ends before it starts", ErrInvalidSettings)
	}
	seen := make(map[string]bool, len(s.Indicators))
	for _, ind := range s.Indicators {
		if ind.ID == "" {
			return fmt.Errorf("%w: indicator without id", ErrInvalidSettings)
		}
		if seen[ind.ID] {
			return fmt.Errorf("%w: duplicate indicator id %q", ErrInvalidSettings, ind.ID)
		}
		seen[ind.ID] = true
		if !ind.Type.Valid() {
			return fmt.Errorf("%w: indicator %q has unknown type %q", ErrInvalidSettings, ind.ID, ind.Type)
		}
		if ind.Period < 0 {
			return fmt.Errorf("%w: indicator %q has negative period", ErrInvalidSettings, ind.ID)
		}
	}
	return nil
}

// ToggleIndicator returns a copy of s with the enabled flag of the given
// indicator flipped. Unknown ids leave the copy unchanged.
func (s ChartSettings) ToggleIndicator(id string) ChartSettings {
	out := s
	out.Indicators = make([]Indicator, len(s.Indicators))
	copy(out.Indicators, s.Indicators)
	for i := range out.Indicators {
		if out.Indicators[i].ID == id {
			out.Indicators[i].Enabled = !out.Indicators[i].Enabled
		}
	}
	return out
}

// EnabledIndicators returns the enabled entries in panel order.
func (s ChartSettings) EnabledIndicators() []Indicator {
	var out []Indicator
	for _, ind := range s.Indicators {
		if ind.Enabled {
			out = append(out, ind)
		}
	}
	return out
}
