package calculator

import (
	"errors"
	"fmt"

	"BacktestDesk/internal/model"
)

var (
	// ErrNoBars is returned when a calculation receives an empty bar sequence.
	ErrNoBars = errors.New("no price bars provided")
	// ErrInvalidPeriod is returned for non-positive or inconsistent periods.
	ErrInvalidPeriod = errors.New("invalid period")
)

func checkInput(bars []model.PriceBar, period int) error {
	if len(bars) == 0 {
		return ErrNoBars
	}
	if period <= 0 {
		return fmt.Errorf("%w: %d must be positive", ErrInvalidPeriod, period)
	}
	return nil
}

// SMA computes the simple moving average of closing prices. Positions with
// fewer than period bars of history carry the bar's own close.
func SMA(bars []model.PriceBar, period int) ([]float64, error) {
	if err := checkInput(bars, period); err != nil {
		return nil, err
	}
	return smaOf(extractCloses(bars), period), nil
}

// EMA computes the exponential moving average of closing prices, seeded with
// the first close. Each rounded value is the base of the next step.
func EMA(bars []model.PriceBar, period int) ([]float64, error) {
	if err := checkInput(bars, period); err != nil {
		return nil, err
	}
	return emaOf(extractCloses(bars), period), nil
}

func smaOf(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i < period-1 {
			out[i] = values[i]
			continue
		}
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = Round2(sum / float64(period))
	}
	return out
}

func emaOf(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	multiplier := 2 / float64(period+1)
	prev := values[0]
	out[0] = prev
	for i := 1; i < len(values); i++ {
		prev = Round2((values[i]-prev)*multiplier + prev)
		out[i] = prev
	}
	return out
}

func extractCloses(bars []model.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
