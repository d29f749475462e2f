package gotalib

import (
	"testing"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, name string, n int, params ...float64) *native.Request {
	t.Helper()
	fn, err := catalog.Default().Lookup(name)
	require.NoError(t, err)
	opts, err := fn.ResolveOptions(params)
	require.NoError(t, err)

	req := &native.Request{Func: fn.Name, EndIdx: n - 1, Options: opts}
	for i, in := range fn.Inputs {
		data := make([]float64, n)
		for j := range data {
			data[j] = float64(j+1) + float64(i)
		}
		req.Inputs = append(req.Inputs, native.Input{Kind: in.Kind, Data: data})
	}
	for range fn.Outputs {
		req.Outputs = append(req.Outputs, native.NewOutBuffer(n))
	}
	return req
}

func initialized(t *testing.T) *Library {
	t.Helper()
	lib := New(nil, nil)
	require.Equal(t, native.Success, lib.Initialize())
	t.Cleanup(func() { lib.Shutdown() })
	return lib
}

func TestLibrary_SMA(t *testing.T) {
	lib := initialized(t)
	req := &native.Request{
		Func:    "SMA",
		EndIdx:  2,
		Inputs:  []native.Input{{Kind: core.SeriesReal, Data: []float64{1, 2, 3}}},
		Options: []native.Option{{Name: "timeperiod", Value: 2, Integer: true}},
		Outputs: []*native.OutBuffer{native.NewOutBuffer(3)},
	}

	begin, count, rc := lib.Call(req)
	require.Equal(t, native.Success, rc)
	assert.Equal(t, 1, begin)
	assert.Equal(t, 2, count)
	require.NoError(t, req.Outputs[0].Commit(count))
	assert.InDeltaSlice(t, []float64{1.5, 2.5}, req.Outputs[0].Values(), 1e-12)
}

func TestLibrary_BadParam(t *testing.T) {
	lib := initialized(t)
	req := request(t, "SMA", 10)
	req.Options[0].Value = 0

	_, _, rc := lib.Call(req)
	assert.Equal(t, native.BadParam, rc)

	_, rc = lib.Lookback(req)
	assert.Equal(t, native.BadParam, rc)
}

func TestLibrary_RequiresInitialize(t *testing.T) {
	lib := New(nil, nil)
	_, _, rc := lib.Call(request(t, "SMA", 40))
	assert.Equal(t, native.LibNotInitialize, rc)
	assert.Equal(t, native.LibNotInitialize, lib.Shutdown())
}

func TestLibrary_IndexChecks(t *testing.T) {
	lib := initialized(t)

	req := request(t, "SMA", 40)
	req.StartIdx = -1
	_, _, rc := lib.Call(req)
	assert.Equal(t, native.OutOfRangeStartIndex, rc)

	req = request(t, "SMA", 40)
	req.StartIdx, req.EndIdx = 5, 4
	_, _, rc = lib.Call(req)
	assert.Equal(t, native.OutOfRangeEndIndex, rc)

	req = request(t, "SMA", 40)
	req.EndIdx = 40
	_, _, rc = lib.Call(req)
	assert.Equal(t, native.BadParam, rc)
}

func TestLibrary_ShortInput(t *testing.T) {
	lib := initialized(t)
	req := request(t, "SMA", 1, 5)

	begin, count, rc := lib.Call(req)
	require.Equal(t, native.Success, rc)
	assert.Equal(t, 0, begin)
	assert.Equal(t, 0, count)
}

func TestLibrary_MultiOutput(t *testing.T) {
	lib := initialized(t)
	req := request(t, "BBANDS", 30, 5)

	begin, count, rc := lib.Call(req)
	require.Equal(t, native.Success, rc)
	assert.Equal(t, 4, begin)
	assert.Equal(t, 26, count)
	for _, out := range req.Outputs {
		require.NoError(t, out.Commit(count))
	}
	upper, middle, lower := req.Outputs[0].Values(), req.Outputs[1].Values(), req.Outputs[2].Values()
	for i := range middle {
		assert.GreaterOrEqual(t, upper[i], middle[i])
		assert.LessOrEqual(t, lower[i], middle[i])
	}
	// middle band of a linear ramp is the window mean
	assert.InDelta(t, 3.0, middle[0], 1e-9)
}

func TestLibrary_UnsupportedFunctions(t *testing.T) {
	lib := initialized(t)
	for _, name := range []string{"CDLDOJI", "ACCBANDS", "AVGDEV", "IMI", "NOPE"} {
		_, _, rc := lib.Call(&native.Request{Func: name})
		assert.Equal(t, native.FuncNotFound, rc, name)
		assert.False(t, lib.Supports(name), name)
		assert.False(t, native.Supports(lib, name), name)
	}
}

func TestLibrary_Lookback(t *testing.T) {
	lib := New(nil, nil)
	tests := []struct {
		name   string
		params []float64
		want   int
	}{
		{"SMA", []float64{2}, 1},
		{"EMA", nil, 29},
		{"RSI", nil, 14},
		{"DEMA", []float64{10}, 18},
		{"T3", []float64{5}, 24},
		{"TRIX", []float64{5}, 13},
		{"ADX", nil, 27},
		{"ADXR", nil, 40},
		{"MACD", nil, 33},
		{"MACDFIX", nil, 33},
		{"STOCH", nil, 8},
		{"STOCHRSI", nil, 20},
		{"MA", []float64{1, 0}, 0},
		{"MA", []float64{10, 6}, 10},
		{"PLUS_DM", []float64{1}, 1},
		{"HT_SINE", nil, 63},
		{"ADD", nil, 0},
	}

	for _, tt := range tests {
		req := request(t, tt.name, 1, tt.params...)
		got, rc := lib.Lookback(req)
		require.Equal(t, native.Success, rc, tt.name)
		assert.Equal(t, tt.want, got, "%s%v", tt.name, tt.params)
	}
}

func TestLibrary_EverySupportedFunctionRuns(t *testing.T) {
	lib := initialized(t)
	for _, fn := range catalog.Default().All() {
		if !lib.Supports(fn.Name) {
			continue
		}
		t.Run(fn.Name, func(t *testing.T) {
			req := request(t, fn.Name, 200)
			begin, count, rc := lib.Call(req)
			require.Equal(t, native.Success, rc)
			assert.Equal(t, 200, begin+count)
			for _, out := range req.Outputs {
				assert.NoError(t, out.Commit(count))
			}
		})
	}
}

func TestMALookback(t *testing.T) {
	assert.Equal(t, 0, maLookback(1, maT3))
	assert.Equal(t, 9, maLookback(10, maSMA))
	assert.Equal(t, 27, maLookback(10, maTEMA))
	assert.Equal(t, 32, maLookback(10, maMAMA))
}
