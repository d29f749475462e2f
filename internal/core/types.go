package core

import "time"

// SeriesKind names the role a sequence plays as an indicator input
type SeriesKind string

const (
	SeriesReal    SeriesKind = "real"
	SeriesOpen    SeriesKind = "open"
	SeriesHigh    SeriesKind = "high"
	SeriesLow     SeriesKind = "low"
	SeriesClose   SeriesKind = "close"
	SeriesVolume  SeriesKind = "volume"
	SeriesPeriods SeriesKind = "periods"
)

// IsPrice reports whether the kind is one of the OHLCV price components
func (k SeriesKind) IsPrice() bool {
	switch k {
	case SeriesOpen, SeriesHigh, SeriesLow, SeriesClose, SeriesVolume:
		return true
	}
	return false
}

// OHLCV represents a candlestick/bar
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Bars is an ordered sequence of candles.
type Bars []OHLCV

// Column extracts one price component as a sequence. Unknown kinds,
// including real, resolve to the close.
func (b Bars) Column(kind SeriesKind) []float64 {
	out := make([]float64, len(b))
	for i, bar := range b {
		switch kind {
		case SeriesOpen:
			out[i] = bar.Open
		case SeriesHigh:
			out[i] = bar.High
		case SeriesLow:
			out[i] = bar.Low
		case SeriesVolume:
			out[i] = bar.Volume
		default:
			out[i] = bar.Close
		}
	}
	return out
}
