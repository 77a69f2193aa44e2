package calculator

import (
	"fmt"

	"BacktestDesk/internal/model"
)

// Compute evaluates one indicator panel entry over bars. A zero Period falls
// back to the indicator's conventional default.
func Compute(bars []model.PriceBar, ind model.Indicator) (model.IndicatorResult, error) {
	res := model.IndicatorResult{ID: ind.ID, Type: ind.Type, Period: ind.Period}

	switch ind.Type {
	case model.IndicatorSMA:
		res.Period = periodOr(ind.Period, 20)
		v, err := SMA(bars, res.Period)
		if err != nil {
			return res, err
		}
		res.Lines = []model.SeriesLine{{Name: "sma", Values: v}}

	case model.IndicatorEMA:
		res.Period = periodOr(ind.Period, 12)
		v, err := EMA(bars, res.Period)
		if err != nil {
			return res, err
		}
		res.Lines = []model.SeriesLine{{Name: "ema", Values: v}}

	case model.IndicatorRSI:
		res.Period = periodOr(ind.Period, DefaultRSIPeriod)
		v, err := RSI(bars, res.Period)
		if err != nil {
			return res, err
		}
		res.Lines = []model.SeriesLine{{Name: "rsi", Values: v}}

	case model.IndicatorMACD:
		res.Period = 0
		m, err := MACD(bars, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
		if err != nil {
			return res, err
		}
		res.Lines = []model.SeriesLine{
			{Name: "macd", Values: m.MACD},
			{Name: "signal", Values: m.Signal},
			{Name: "histogram", Values: m.Histogram},
		}

	case model.IndicatorBB:
		res.Period = periodOr(ind.Period, DefaultBBPeriod)
		b, err := BollingerBands(bars, res.Period, DefaultBBWidth)
		if err != nil {
			return res, err
		}
		res.Lines = []model.SeriesLine{
			{Name: "upper", Values: b.Upper},
			{Name: "middle", Values: b.Middle},
			{Name: "lower", Values: b.Lower},
		}

	case model.IndicatorVWAP:
		res.Period = 0
		v, err := VWAP(bars)
		if err != nil {
			return res, err
		}
		res.Lines = []model.SeriesLine{{Name: "vwap", Values: v}}

	default:
		return res, fmt.Errorf("unsupported indicator type %q", ind.Type)
	}
	return res, nil
}

func periodOr(p, def int) int {
	if p == 0 {
		return def
	}
	return p
}
