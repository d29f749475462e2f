package ta

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"github.com/newthinker/tacall/internal/native/gotalib"
	"github.com/newthinker/tacall/internal/native/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	mu    sync.Mutex
	calls map[string]int
	jobs  map[string]int
}

func newRecorded() *recorded {
	return &recorded{calls: make(map[string]int), jobs: make(map[string]int)}
}

func (r *recorded) RecordCall(function, status string, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[function+"/"+status]++
}

func (r *recorded) RecordBatchJob(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[status]++
}

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 10*math.Sin(float64(i)/5) + float64(i)/10
	}
	return out
}

func pureAdapter(t *testing.T, opts ...Option) *Adapter {
	t.Helper()
	a := New(gotalib.New(nil, nil), opts...)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestCall_SMA(t *testing.T) {
	a := pureAdapter(t)

	res, err := a.Call("SMA", [][]float64{{1, 2, 3}}, 2)
	require.NoError(t, err)
	assert.Equal(t, "SMA", res.Func)
	assert.Equal(t, 1, res.Begin)
	assert.Equal(t, []string{"real"}, res.Names)
	assert.InDeltaSlice(t, []float64{1.5, 2.5}, res.Output("real"), 1e-12)
}

func TestCall_ShapeMismatch(t *testing.T) {
	lib := mocks.New().On("MFI", mocks.Copy(0))
	a := New(lib)

	hlcv := [][]float64{ramp(20), ramp(20), ramp(19), ramp(20)}
	_, err := a.Call("MFI", hlcv, 14)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))
	assert.Equal(t, int64(0), lib.Calls())
	assert.Equal(t, int64(0), lib.Inits())
}

func TestCall_BadParam(t *testing.T) {
	rec := newRecorded()
	a := pureAdapter(t, WithRecorder(rec))

	_, err := a.Call("SMA", [][]float64{ramp(10)}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrComputationFailed))

	rc, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, native.BadParam, rc)
	assert.Equal(t, 1, rec.calls["SMA/TA_BAD_PARAM"])
}

func TestCall_SingleElement(t *testing.T) {
	a := pureAdapter(t)
	for _, name := range []string{"SMA", "EMA", "RSI", "MACD", "BBANDS"} {
		res, err := a.Call(name, [][]float64{{42}})
		require.NoError(t, err, name)
		assert.Equal(t, 0, res.Len(), name)
		for _, out := range res.Outputs {
			assert.Empty(t, out, name)
		}
	}
}

func TestCall_EmptyInput(t *testing.T) {
	lib := mocks.New().On("SMA", mocks.Copy(0))
	a := New(lib)

	res, err := a.Call("SMA", [][]float64{{}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Begin)
	assert.Equal(t, []core.Series{{}}, res.Outputs)
	assert.Equal(t, int64(0), lib.Calls())

	for _, period := range []float64{0, -5} {
		_, err := a.Call("SMA", [][]float64{{}}, period)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrComputationFailed))
		rc, ok := StatusCode(err)
		require.True(t, ok)
		assert.Equal(t, native.BadParam, rc)
	}
	assert.Equal(t, int64(0), lib.Calls())
}

func TestSupports(t *testing.T) {
	a := pureAdapter(t)
	assert.True(t, a.Supports("sma"))
	assert.False(t, a.Supports("ACCBANDS"))
	assert.False(t, a.Supports("NOPE"))

	assert.True(t, New(mocks.New()).Supports("ACCBANDS"))
}

func TestResult_JSONNonFinite(t *testing.T) {
	a := pureAdapter(t)

	res, err := a.Call("DIV", [][]float64{{1, -1, 0, 6}, {0, 0, 0, 3}})
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"func":"DIV","begin":0,"names":["real"],"outputs":[["+Inf","-Inf","NaN",2]]}`, string(data))

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, math.IsInf(back.Outputs[0][0], 1))
	assert.True(t, math.IsNaN(back.Outputs[0][2]))
}

func TestCall_InputCount(t *testing.T) {
	a := pureAdapter(t)
	_, err := a.Call("ADD", [][]float64{ramp(5)})
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestCall_UnknownFunction(t *testing.T) {
	a := pureAdapter(t)
	_, err := a.Call("NOPE", [][]float64{ramp(5)})
	assert.True(t, errors.Is(err, core.ErrUnknownFunction))
}

func TestCall_OverrunRejected(t *testing.T) {
	lib := mocks.New().On("SMA", mocks.Overrun())
	a := New(lib)

	_, err := a.Call("SMA", [][]float64{ramp(5)}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrComputationFailed))
}

func TestCall_InvariantsAcrossCatalog(t *testing.T) {
	a := pureAdapter(t)
	lib := gotalib.New(nil, nil)

	for _, fn := range catalog.Default().All() {
		if !lib.Supports(fn.Name) {
			continue
		}
		t.Run(fn.Name, func(t *testing.T) {
			n := 120
			inputs := make([][]float64, len(fn.Inputs))
			for i := range inputs {
				inputs[i] = ramp(n)
			}
			res, err := a.Call(fn.Name, inputs)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Begin, 0)
			assert.LessOrEqual(t, res.Begin, n)
			for _, out := range res.Outputs {
				assert.Len(t, out, n-res.Begin)
			}
		})
	}
}

func TestCall_Idempotent(t *testing.T) {
	a := pureAdapter(t)
	in := [][]float64{ramp(200)}

	first, err := a.Call("MACD", in)
	require.NoError(t, err)
	second, err := a.Call("MACD", in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCall_ConcurrentMatchesSequential(t *testing.T) {
	for _, mode := range []native.Mode{native.ModePinned, native.ModeRefCount} {
		t.Run(string(mode), func(t *testing.T) {
			a := pureAdapter(t, WithLifecycle(mode))
			names := []string{"SMA", "EMA", "RSI", "BBANDS", "STOCH", "ATR"}
			inputsFor := func(name string) [][]float64 {
				fn, _ := a.Catalog().Lookup(name)
				in := make([][]float64, len(fn.Inputs))
				for i := range in {
					in[i] = ramp(150)
				}
				return in
			}

			want := make(map[string]*Result)
			for _, name := range names {
				res, err := a.Call(name, inputsFor(name))
				require.NoError(t, err)
				want[name] = res
			}

			var wg sync.WaitGroup
			for i := 0; i < 64; i++ {
				name := names[i%len(names)]
				wg.Add(1)
				go func() {
					defer wg.Done()
					res, err := a.Call(name, inputsFor(name))
					if assert.NoError(t, err) {
						assert.Equal(t, want[name], res)
					}
				}()
			}
			wg.Wait()
			assert.Equal(t, 0, a.Refs())
		})
	}
}

func TestCallNamed(t *testing.T) {
	a := pureAdapter(t)
	high, low, closing := ramp(60), ramp(60), ramp(60)
	for i := range high {
		high[i] += 2
		low[i] -= 2
	}

	res, err := a.CallNamed("STOCH",
		map[string][]float64{"high": high, "low": low, "close": closing},
		map[string]float64{"fastk_period": 14})
	require.NoError(t, err)
	assert.Equal(t, 17, res.Begin)
	assert.Len(t, res.Output("slowk"), 43)
	assert.Len(t, res.Output("slowd"), 43)

	_, err = a.CallNamed("STOCH", map[string][]float64{"high": high, "low": low}, nil)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = a.CallNamed("STOCH",
		map[string][]float64{"high": high, "low": low, "close": closing, "volume": closing}, nil)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestLookback(t *testing.T) {
	a := pureAdapter(t)

	n, err := a.Lookback("SMA", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = a.Lookback("MACD")
	require.NoError(t, err)
	assert.Equal(t, 33, n)

	_, err = a.Lookback("SMA", 0)
	assert.True(t, errors.Is(err, core.ErrComputationFailed))
}

func TestClose(t *testing.T) {
	lib := mocks.New().On("SMA", mocks.Copy(1))
	a := New(lib)

	_, err := a.Call("SMA", [][]float64{ramp(5)}, 2)
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.Equal(t, int64(1), lib.Shutdowns())

	_, err = a.Call("SMA", [][]float64{ramp(5)}, 2)
	assert.True(t, errors.Is(err, core.ErrLifecycleFailed))
}

func TestNewBackend(t *testing.T) {
	lib, err := NewBackend("", nil)
	require.NoError(t, err)
	assert.Equal(t, "gotalib", lib.Name())

	_, err = NewBackend("fortran", nil)
	assert.True(t, errors.Is(err, core.ErrConfigInvalid))
}
