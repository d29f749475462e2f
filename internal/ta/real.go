package ta

import "strconv"

// Real is the element type accepted for input sequences. Outputs are
// always float64.
type Real interface {
	~float32 | ~float64
}

func widen[T Real](xs []T) []float64 {
	if f, ok := any(xs).([]float64); ok {
		return f
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// MAType selects the moving average used inside a function.
type MAType int

const (
	MATypeSMA MAType = iota
	MATypeEMA
	MATypeWMA
	MATypeDEMA
	MATypeTEMA
	MATypeTRIMA
	MATypeKAMA
	MATypeMAMA
	MATypeT3
)

var maTypeNames = [...]string{"SMA", "EMA", "WMA", "DEMA", "TEMA", "TRIMA", "KAMA", "MAMA", "T3"}

func (m MAType) String() string {
	if m >= 0 && int(m) < len(maTypeNames) {
		return maTypeNames[m]
	}
	return "MAType(" + strconv.Itoa(int(m)) + ")"
}
