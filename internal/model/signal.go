package model

// RSIZone classifies the latest RSI value.
type RSIZone string

const (
	ZoneOverbought RSIZone = "OVERBOUGHT"
	ZoneOversold   RSIZone = "OVERSOLD"
	ZoneNeutral    RSIZone = "NEUTRAL"
)

// Trend compares the latest close to a moving average.
type Trend string

const (
	TrendAbove Trend = "ABOVE"
	TrendBelow Trend = "BELOW"
	TrendFlat  Trend = "AT"
)

// BandPosition locates the latest close relative to the Bollinger Bands.
type BandPosition string

const (
	BandAboveUpper BandPosition = "ABOVE_UPPER"
	BandBelowLower BandPosition = "BELOW_LOWER"
	BandInside     BandPosition = "INSIDE"
)

// Momentum is the sign of the MACD histogram.
type Momentum string

const (
	MomentumBullish Momentum = "BULLISH"
	MomentumBearish Momentum = "BEARISH"
	MomentumNone    Momentum = "NONE"
)

// ReadoutItem is a single interpreted indicator value.
type ReadoutItem struct {
	Name       string
	Value      float64
	Commentary string
}

// Readout is the descriptive interpretation of a snapshot's latest values.
// Empty fields mean the corresponding indicator was not computed.
type Readout struct {
	Items      []ReadoutItem
	RSIZone    RSIZone
	SMATrend   Trend
	EMATrend   Trend
	Band       BandPosition
	Momentum   Momentum
	WarningMsg string
}
