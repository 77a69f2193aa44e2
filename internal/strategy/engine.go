package strategy

import "BacktestDesk/internal/model"

// RSI thresholds matching the chart's reference lines, plus the extreme
// levels that raise a warning.
const (
	RSIOverbought        = 70.0
	RSIOversold          = 30.0
	RSIExtremeOverbought = 85.0
	RSIExtremeOversold   = 15.0
)

// Evaluate interprets the latest value of every computed indicator in snap.
// It is descriptive only and never suggests position sizes.
func Evaluate(snap *model.Snapshot) *model.Readout {
	r := &model.Readout{}
	if snap == nil || len(snap.Bars) == 0 {
		return r
	}
	price := snap.Bars[len(snap.Bars)-1].Close

	if res := snap.ResultByType(model.IndicatorRSI); res != nil {
		item, zone := readRSI(res)
		r.Items = append(r.Items, item)
		r.RSIZone = zone
		switch {
		case item.Value > RSIExtremeOverbought:
			r.WarningMsg = "RSI above 85: extremely overbought"
		case item.Value < RSIExtremeOversold:
			r.WarningMsg = "RSI below 15: extremely oversold"
		}
	}
	if res := snap.ResultByType(model.IndicatorSMA); res != nil {
		item, trend := readAverage(res, "sma", price)
		r.Items = append(r.Items, item)
		r.SMATrend = trend
	}
	if res := snap.ResultByType(model.IndicatorEMA); res != nil {
		item, trend := readAverage(res, "ema", price)
		r.Items = append(r.Items, item)
		r.EMATrend = trend
	}
	if res := snap.ResultByType(model.IndicatorBB); res != nil {
		item, band := readBands(res, price)
		r.Items = append(r.Items, item)
		r.Band = band
	}
	if res := snap.ResultByType(model.IndicatorMACD); res != nil {
		item, m := readMACD(res)
		r.Items = append(r.Items, item)
		r.Momentum = m
	}
	if res := snap.ResultByType(model.IndicatorVWAP); res != nil {
		item, _ := readAverage(res, "vwap", price)
		r.Items = append(r.Items, item)
	}
	return r
}
