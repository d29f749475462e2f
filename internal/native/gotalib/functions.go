package gotalib

import (
	talib "github.com/markcheno/go-talib"
	"github.com/newthinker/tacall/internal/native"
)

// args carries the truncated inputs and resolved options of one call.
type args struct {
	in   [][]float64
	opts []native.Option
}

func (a args) i(k int) int { return a.opts[k].Int() }
func (a args) f(k int) float64 { return a.opts[k].Value }
func (a args) ma(k int) talib.MaType { return talib.MaType(a.opts[k].Int()) }
func (a args) ohlc() (o, h, l, c []float64) { return a.in[0], a.in[1], a.in[2], a.in[3] }

type entry struct {
	lookback func(a args) int
	run      func(a args) [][]float64
}

func one(x []float64) [][]float64 { return [][]float64{x} }
func two(x, y []float64) [][]float64 { return [][]float64{x, y} }
func three(x, y, z []float64) [][]float64 { return [][]float64{x, y, z} }

func fixed(n int) func(args) int { return func(args) int { return n } }

// period returns a lookback of the first option plus off.
func period(off int) func(args) int {
	return func(a args) int { return a.i(0) + off }
}

// single wraps a transform of one real input without options.
func single(fn func([]float64) []float64) entry {
	return entry{fixed(0), func(a args) [][]float64 { return one(fn(a.in[0])) }}
}

// pair wraps an element-wise operator over two real inputs.
func pair(fn func(x, y []float64) []float64) entry {
	return entry{fixed(0), func(a args) [][]float64 { return one(fn(a.in[0], a.in[1])) }}
}

// windowed wraps a single-input function of one period.
func windowed(off int, fn func([]float64, int) []float64) entry {
	return entry{period(off), func(a args) [][]float64 { return one(fn(a.in[0], a.i(0))) }}
}

// hlcWindowed wraps a high/low/close function of one period.
func hlcWindowed(lookback func(args) int, fn func(h, l, c []float64, p int) []float64) entry {
	return entry{lookback, func(a args) [][]float64 { return one(fn(a.in[0], a.in[1], a.in[2], a.i(0))) }}
}

// directional lookbacks collapse to one bar when the period is 1.
func diLookback(a args) int {
	if a.i(0) > 1 {
		return a.i(0)
	}
	return 1
}

func dmLookback(a args) int {
	if a.i(0) > 1 {
		return a.i(0) - 1
	}
	return 1
}

var entries = map[string]entry{
	// Overlap studies
	"BBANDS": {
		func(a args) int { return maLookback(a.i(0), a.i(3)) },
		func(a args) [][]float64 { return three(talib.BBands(a.in[0], a.i(0), a.f(1), a.f(2), a.ma(3))) },
	},
	"DEMA":         {func(a args) int { return 2 * (a.i(0) - 1) }, func(a args) [][]float64 { return one(talib.Dema(a.in[0], a.i(0))) }},
	"EMA":          windowed(-1, talib.Ema),
	"HT_TRENDLINE": {fixed(63), func(a args) [][]float64 { return one(talib.HtTrendline(a.in[0])) }},
	"KAMA":         windowed(0, talib.Kama),
	"MA": {
		func(a args) int { return maLookback(a.i(0), a.i(1)) },
		func(a args) [][]float64 { return one(talib.Ma(a.in[0], a.i(0), a.ma(1))) },
	},
	"MAMA": {fixed(32), func(a args) [][]float64 { return two(talib.Mama(a.in[0], a.f(0), a.f(1))) }},
	"MAVP": {
		func(a args) int { return maLookback(a.i(1), a.i(2)) },
		func(a args) [][]float64 {
			return one(talib.MaVp(a.in[0], a.in[1], a.i(0), a.i(1), a.ma(2)))
		},
	},
	"MIDPOINT": windowed(-1, talib.MidPoint),
	"MIDPRICE": {period(-1), func(a args) [][]float64 { return one(talib.MidPrice(a.in[0], a.in[1], a.i(0))) }},
	"SAR":      {fixed(1), func(a args) [][]float64 { return one(talib.Sar(a.in[0], a.in[1], a.f(0), a.f(1))) }},
	"SAREXT": {fixed(1), func(a args) [][]float64 {
		return one(talib.SarExt(a.in[0], a.in[1],
			a.f(0), a.f(1), a.f(2), a.f(3), a.f(4), a.f(5), a.f(6), a.f(7)))
	}},
	"SMA":   windowed(-1, talib.Sma),
	"T3":    {func(a args) int { return 6 * (a.i(0) - 1) }, func(a args) [][]float64 { return one(talib.T3(a.in[0], a.i(0), a.f(1))) }},
	"TEMA":  {func(a args) int { return 3 * (a.i(0) - 1) }, func(a args) [][]float64 { return one(talib.Tema(a.in[0], a.i(0))) }},
	"TRIMA": windowed(-1, talib.Trima),
	"WMA":   windowed(-1, talib.Wma),

	// Momentum indicators
	"ADX":  hlcWindowed(func(a args) int { return 2*a.i(0) - 1 }, talib.Adx),
	"ADXR": hlcWindowed(func(a args) int { return 3*a.i(0) - 2 }, talib.AdxR),
	"APO": {
		func(a args) int { return maLookback(max(a.i(0), a.i(1)), a.i(2)) },
		func(a args) [][]float64 { return one(talib.Apo(a.in[0], a.i(0), a.i(1), a.ma(2))) },
	},
	"AROON":    {period(0), func(a args) [][]float64 { return two(talib.Aroon(a.in[0], a.in[1], a.i(0))) }},
	"AROONOSC": {period(0), func(a args) [][]float64 { return one(talib.AroonOsc(a.in[0], a.in[1], a.i(0))) }},
	"BOP": {fixed(0), func(a args) [][]float64 {
		o, h, l, c := a.ohlc()
		return one(talib.Bop(o, h, l, c))
	}},
	"CCI": hlcWindowed(period(-1), talib.Cci),
	"CMO": windowed(0, talib.Cmo),
	"DX":  hlcWindowed(period(0), talib.Dx),
	"MACD": {
		func(a args) int {
			fast, slow := a.i(0), a.i(1)
			if slow < fast {
				slow = fast
			}
			return (slow - 1) + (a.i(2) - 1)
		},
		func(a args) [][]float64 { return three(talib.Macd(a.in[0], a.i(0), a.i(1), a.i(2))) },
	},
	"MACDEXT": {
		func(a args) int {
			return max(maLookback(a.i(0), a.i(1)), maLookback(a.i(2), a.i(3))) + maLookback(a.i(4), a.i(5))
		},
		func(a args) [][]float64 {
			return three(talib.MacdExt(a.in[0], a.i(0), a.ma(1), a.i(2), a.ma(3), a.i(4), a.ma(5)))
		},
	},
	"MACDFIX": {
		func(a args) int { return 25 + a.i(0) - 1 },
		func(a args) [][]float64 { return three(talib.MacdFix(a.in[0], a.i(0))) },
	},
	"MFI": {period(0), func(a args) [][]float64 {
		return one(talib.Mfi(a.in[0], a.in[1], a.in[2], a.in[3], a.i(0)))
	}},
	"MINUS_DI": hlcWindowed(diLookback, talib.MinusDI),
	"MINUS_DM": {dmLookback, func(a args) [][]float64 { return one(talib.MinusDM(a.in[0], a.in[1], a.i(0))) }},
	"MOM":      windowed(0, talib.Mom),
	"PLUS_DI":  hlcWindowed(diLookback, talib.PlusDI),
	"PLUS_DM":  {dmLookback, func(a args) [][]float64 { return one(talib.PlusDM(a.in[0], a.in[1], a.i(0))) }},
	"PPO": {
		func(a args) int { return maLookback(max(a.i(0), a.i(1)), a.i(2)) },
		func(a args) [][]float64 { return one(talib.Ppo(a.in[0], a.i(0), a.i(1), a.ma(2))) },
	},
	"ROC":     windowed(0, talib.Roc),
	"ROCP":    windowed(0, talib.Rocp),
	"ROCR":    windowed(0, talib.Rocr),
	"ROCR100": windowed(0, talib.Rocr100),
	"RSI":     windowed(0, talib.Rsi),
	"STOCH": {
		func(a args) int { return (a.i(0) - 1) + maLookback(a.i(1), a.i(2)) + maLookback(a.i(3), a.i(4)) },
		func(a args) [][]float64 {
			return two(talib.Stoch(a.in[0], a.in[1], a.in[2], a.i(0), a.i(1), a.ma(2), a.i(3), a.ma(4)))
		},
	},
	"STOCHF": {
		func(a args) int { return (a.i(0) - 1) + maLookback(a.i(1), a.i(2)) },
		func(a args) [][]float64 {
			return two(talib.StochF(a.in[0], a.in[1], a.in[2], a.i(0), a.i(1), a.ma(2)))
		},
	},
	"STOCHRSI": {
		func(a args) int { return a.i(0) + (a.i(1) - 1) + maLookback(a.i(2), a.i(3)) },
		func(a args) [][]float64 {
			return two(talib.StochRsi(a.in[0], a.i(0), a.i(1), a.i(2), a.ma(3)))
		},
	},
	"TRIX": {func(a args) int { return 3*(a.i(0)-1) + 1 }, func(a args) [][]float64 { return one(talib.Trix(a.in[0], a.i(0))) }},
	"ULTOSC": {
		func(a args) int { return max(a.i(0), a.i(1), a.i(2)) },
		func(a args) [][]float64 {
			return one(talib.UltOsc(a.in[0], a.in[1], a.in[2], a.i(0), a.i(1), a.i(2)))
		},
	},
	"WILLR": hlcWindowed(period(-1), talib.WillR),

	// Volume indicators
	"AD": {fixed(0), func(a args) [][]float64 { return one(talib.Ad(a.in[0], a.in[1], a.in[2], a.in[3])) }},
	"ADOSC": {
		func(a args) int { return max(a.i(0), a.i(1)) - 1 },
		func(a args) [][]float64 {
			return one(talib.AdOsc(a.in[0], a.in[1], a.in[2], a.in[3], a.i(0), a.i(1)))
		},
	},
	"OBV": {fixed(0), func(a args) [][]float64 { return one(talib.Obv(a.in[0], a.in[1])) }},

	// Volatility indicators
	"ATR":    hlcWindowed(period(0), talib.Atr),
	"NATR":   hlcWindowed(period(0), talib.Natr),
	"TRANGE": {fixed(1), func(a args) [][]float64 { return one(talib.TRange(a.in[0], a.in[1], a.in[2])) }},

	// Price transform
	"AVGPRICE": {fixed(0), func(a args) [][]float64 {
		o, h, l, c := a.ohlc()
		return one(talib.AvgPrice(o, h, l, c))
	}},
	"MEDPRICE": {fixed(0), func(a args) [][]float64 { return one(talib.MedPrice(a.in[0], a.in[1])) }},
	"TYPPRICE": {fixed(0), func(a args) [][]float64 { return one(talib.TypPrice(a.in[0], a.in[1], a.in[2])) }},
	"WCLPRICE": {fixed(0), func(a args) [][]float64 { return one(talib.WclPrice(a.in[0], a.in[1], a.in[2])) }},

	// Cycle indicators
	"HT_DCPERIOD":  {fixed(32), func(a args) [][]float64 { return one(talib.HtDcPeriod(a.in[0])) }},
	"HT_DCPHASE":   {fixed(63), func(a args) [][]float64 { return one(talib.HtDcPhase(a.in[0])) }},
	"HT_PHASOR":    {fixed(32), func(a args) [][]float64 { return two(talib.HtPhasor(a.in[0])) }},
	"HT_SINE":      {fixed(63), func(a args) [][]float64 { return two(talib.HtSine(a.in[0])) }},
	"HT_TRENDMODE": {fixed(63), func(a args) [][]float64 { return one(talib.HtTrendMode(a.in[0])) }},

	// Statistic functions
	"BETA":                {period(0), func(a args) [][]float64 { return one(talib.Beta(a.in[0], a.in[1], a.i(0))) }},
	"CORREL":              {period(-1), func(a args) [][]float64 { return one(talib.Correl(a.in[0], a.in[1], a.i(0))) }},
	"LINEARREG":           windowed(-1, talib.LinearReg),
	"LINEARREG_ANGLE":     windowed(-1, talib.LinearRegAngle),
	"LINEARREG_INTERCEPT": windowed(-1, talib.LinearRegIntercept),
	"LINEARREG_SLOPE":     windowed(-1, talib.LinearRegSlope),
	"STDDEV":              {period(-1), func(a args) [][]float64 { return one(talib.StdDev(a.in[0], a.i(0), a.f(1))) }},
	"TSF":                 windowed(-1, talib.Tsf),
	"VAR":                 windowed(-1, talib.Var),

	// Math transform
	"ACOS":  single(talib.Acos),
	"ASIN":  single(talib.Asin),
	"ATAN":  single(talib.Atan),
	"CEIL":  single(talib.Ceil),
	"COS":   single(talib.Cos),
	"COSH":  single(talib.Cosh),
	"EXP":   single(talib.Exp),
	"FLOOR": single(talib.Floor),
	"LN":    single(talib.Ln),
	"LOG10": single(talib.Log10),
	"SIN":   single(talib.Sin),
	"SINH":  single(talib.Sinh),
	"SQRT":  single(talib.Sqrt),
	"TAN":   single(talib.Tan),
	"TANH":  single(talib.Tanh),

	// Math operators
	"ADD":         pair(talib.Add),
	"DIV":         pair(talib.Div),
	"MAX":         windowed(-1, talib.Max),
	"MAXINDEX":    windowed(-1, talib.MaxIndex),
	"MIN":         windowed(-1, talib.Min),
	"MININDEX":    windowed(-1, talib.MinIndex),
	"MINMAX":      {period(-1), func(a args) [][]float64 { return two(talib.MinMax(a.in[0], a.i(0))) }},
	"MINMAXINDEX": {period(-1), func(a args) [][]float64 { return two(talib.MinMaxIndex(a.in[0], a.i(0))) }},
	"MULT":        pair(talib.Mult),
	"SUB":         pair(talib.Sub),
	"SUM":         windowed(-1, talib.Sum),
}
