package calculator

import (
	"fmt"
	"math"

	"BacktestDesk/internal/model"
)

// Standard Bollinger settings.
const (
	DefaultBBPeriod = 20
	DefaultBBWidth  = 2.0
)

// BandsResult holds the upper, middle and lower Bollinger lines.
type BandsResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands computes an SMA middle band with bands width standard
// deviations (population) away. Positions without a full window collapse all
// three bands onto the close, as the SMA does.
func BollingerBands(bars []model.PriceBar, period int, width float64) (*BandsResult, error) {
	if err := checkInput(bars, period); err != nil {
		return nil, err
	}
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("band width %v must be a non-negative number", width)
	}

	closes := extractCloses(bars)
	res := &BandsResult{
		Upper:  make([]float64, len(closes)),
		Middle: smaOf(closes, period),
		Lower:  make([]float64, len(closes)),
	}
	for i := range closes {
		if i < period-1 {
			res.Upper[i] = closes[i]
			res.Lower[i] = closes[i]
			continue
		}
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += closes[j]
		}
		mean := sum / float64(period)
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mean
			variance += d * d
		}
		stdDev := math.Sqrt(variance / float64(period))
		res.Upper[i] = Round2(mean + width*stdDev)
		res.Lower[i] = Round2(mean - width*stdDev)
	}
	return res, nil
}
