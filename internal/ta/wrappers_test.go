package ta

import (
	"errors"
	"testing"

	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA_Typed(t *testing.T) {
	out, begin, err := SMA(2, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, begin)
	assert.InDeltaSlice(t, []float64{1.5, 2.5}, out, 1e-12)
}

func TestFloat32MatchesFloat64(t *testing.T) {
	in64 := []float64{1, 4, 2, 8, 5, 7, 3, 9, 6, 10, 12, 11}
	in32 := make([]float32, len(in64))
	for i, v := range in64 {
		in32[i] = float32(v)
	}

	want, wantBegin, err := EMA(3, in64)
	require.NoError(t, err)
	got, gotBegin, err := EMA(3, in32)
	require.NoError(t, err)
	assert.Equal(t, wantBegin, gotBegin)
	assert.Equal(t, want, got)
}

type price float64

func TestDefinedFloatType(t *testing.T) {
	out, begin, err := MAX(3, []price{1, 5, 2, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, begin)
	assert.Equal(t, []float64{5, 5, 4}, out)
}

func TestBBANDS_Typed(t *testing.T) {
	upper, middle, lower, begin, err := BBANDS(5, 2, 2, MATypeSMA, ramp(40))
	require.NoError(t, err)
	assert.Equal(t, 4, begin)
	assert.Len(t, upper, 36)
	assert.Len(t, middle, 36)
	assert.Len(t, lower, 36)
}

func TestMFI_ShapeMismatch(t *testing.T) {
	_, _, err := MFI(14, ramp(20), ramp(20), ramp(20), ramp(19))
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))
}

func TestSMA_PeriodZero(t *testing.T) {
	_, _, err := SMA(0, ramp(10))
	require.Error(t, err)
	rc, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, native.BadParam, rc)
	assert.Equal(t, 2, int(rc))
}

func TestCandlestick_PureBackend(t *testing.T) {
	_, _, err := CDLDOJI(ramp(10), ramp(10), ramp(10), ramp(10))
	rc, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, native.FuncNotFound, rc)
}

func TestMAType_String(t *testing.T) {
	assert.Equal(t, "T3", MATypeT3.String())
	assert.Equal(t, "MAType(12)", MAType(12).String())
}
