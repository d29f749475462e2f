package gotalib

// Moving average selectors, in TA_MAType order.
const (
	maSMA = iota
	maEMA
	maWMA
	maDEMA
	maTEMA
	maTRIMA
	maKAMA
	maMAMA
	maT3
)

// maLookback mirrors TA_MA_Lookback: a period of 1 passes the input through.
func maLookback(period, maType int) int {
	if period <= 1 {
		return 0
	}
	switch maType {
	case maDEMA:
		return 2 * (period - 1)
	case maTEMA:
		return 3 * (period - 1)
	case maKAMA:
		return period
	case maMAMA:
		return 32
	case maT3:
		return 6 * (period - 1)
	default:
		return period - 1
	}
}
