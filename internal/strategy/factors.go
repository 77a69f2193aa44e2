package strategy

import (
	"fmt"

	"BacktestDesk/internal/model"
)

func lastOf(res *model.IndicatorResult, line string) float64 {
	if l := res.Line(line); l != nil {
		return l.Last()
	}
	return 0
}

// readRSI classifies the latest RSI against the 30/70 reference lines.
func readRSI(res *model.IndicatorResult) (model.ReadoutItem, model.RSIZone) {
	rsi := lastOf(res, "rsi")
	var zone model.RSIZone
	switch {
	case rsi >= RSIOverbought:
		zone = model.ZoneOverbought
	case rsi <= RSIOversold:
		zone = model.ZoneOversold
	default:
		zone = model.ZoneNeutral
	}
	return model.ReadoutItem{
		Name:       fmt.Sprintf("RSI(%d)", res.Period),
		Value:      rsi,
		Commentary: fmt.Sprintf("RSI=%.2f %s", rsi, zone),
	}, zone
}

// readAverage compares price with the latest value of a moving average line.
func readAverage(res *model.IndicatorResult, line string, price float64) (model.ReadoutItem, model.Trend) {
	avg := lastOf(res, line)
	var trend model.Trend
	switch {
	case price > avg:
		trend = model.TrendAbove
	case price < avg:
		trend = model.TrendBelow
	default:
		trend = model.TrendFlat
	}

	dev := 0.0
	if avg != 0 {
		dev = (price - avg) / avg * 100
	}
	name := string(res.Type)
	if res.Period > 0 {
		name = fmt.Sprintf("%s(%d)", res.Type, res.Period)
	}
	return model.ReadoutItem{
		Name:       name,
		Value:      avg,
		Commentary: fmt.Sprintf("price %s, deviation %+.1f%%", trend, dev),
	}, trend
}

// readBands locates price against the latest upper and lower band.
func readBands(res *model.IndicatorResult, price float64) (model.ReadoutItem, model.BandPosition) {
	upper, middle, lower := lastOf(res, "upper"), lastOf(res, "middle"), lastOf(res, "lower")
	var pos model.BandPosition
	switch {
	case price > upper:
		pos = model.BandAboveUpper
	case price < lower:
		pos = model.BandBelowLower
	default:
		pos = model.BandInside
	}
	return model.ReadoutItem{
		Name:       fmt.Sprintf("BB(%d)", res.Period),
		Value:      middle,
		Commentary: fmt.Sprintf("%.2f / %.2f / %.2f %s", upper, middle, lower, pos),
	}, pos
}

// readMACD reports momentum from the sign of the latest histogram bar.
func readMACD(res *model.IndicatorResult) (model.ReadoutItem, model.Momentum) {
	hist := lastOf(res, "histogram")
	var m model.Momentum
	switch {
	case hist > 0:
		m = model.MomentumBullish
	case hist < 0:
		m = model.MomentumBearish
	default:
		m = model.MomentumNone
	}
	return model.ReadoutItem{
		Name:       "MACD",
		Value:      lastOf(res, "macd"),
		Commentary: fmt.Sprintf("histogram %+.2f %s", hist, m),
	}, m
}
