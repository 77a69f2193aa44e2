package calculator

import "BacktestDesk/internal/model"

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// RSI computes the relative strength index using a simple (non-Wilder)
// average of the trailing period gains and losses. Positions without a full
// window are reported as 50.
func RSI(bars []model.PriceBar, period int) ([]float64, error) {
	if err := checkInput(bars, period); err != nil {
		return nil, err
	}

	n := len(bars)
	gains := make([]float64, n-1)
	losses := make([]float64, n-1)
	for i := 1; i < n; i++ {
		change := bars[i].Close - bars[i-1].Close
		if change > 0 {
			gains[i-1] = change
		} else if change < 0 {
			losses[i-1] = -change
		}
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = 50
	}
	for i := period; i < n; i++ {
		var sumGain, sumLoss float64
		for j := i - period; j < i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}
		avgGain := sumGain / float64(period)
		avgLoss := sumLoss / float64(period)

		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = Round2(100 - 100/(1+rs))
	}
	return out, nil
}
