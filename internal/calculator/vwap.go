package calculator

import "BacktestDesk/internal/model"

// VWAP computes the cumulative volume weighted average of the typical price
// (high+low+close)/3. While no volume has traded the typical price is used.
func VWAP(bars []model.PriceBar) ([]float64, error) {
	if len(bars) == 0 {
		return nil, ErrNoBars
	}
	out := make([]float64, len(bars))
	var cumTPV, cumVolume float64
	for i, b := range bars {
		typical := (b.High + b.Low + b.Close) / 3
		cumTPV += typical * float64(b.Volume)
		cumVolume += float64(b.Volume)
		if cumVolume == 0 {
			out[i] = Round2(typical)
			continue
		}
		out[i] = Round2(cumTPV / cumVolume)
	}
	return out, nil
}
