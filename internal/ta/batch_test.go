package ta

import (
	"context"
	"errors"
	"testing"

	"github.com/newthinker/tacall/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	rec := newRecorded()
	a := pureAdapter(t, WithWorkers(2), WithRecorder(rec))

	jobs := []Job{
		{Func: "SMA", Inputs: map[string][]float64{"real": {1, 2, 3}}, Params: map[string]float64{"timeperiod": 2}},
		{Func: "EMA", Inputs: map[string][]float64{"real": ramp(50)}, Params: map[string]float64{"timeperiod": 10}},
		{Func: "ADD", Inputs: map[string][]float64{"real0": {1, 2}, "real1": {3, 4}}},
	}
	results, err := a.Batch(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "SMA", results[0].Func)
	assert.InDeltaSlice(t, []float64{1.5, 2.5}, results[0].Outputs[0], 1e-12)
	assert.Equal(t, 9, results[1].Begin)
	assert.Equal(t, core.Series{4, 6}, results[2].Outputs[0])
	assert.Equal(t, 3, rec.jobs["ok"])
}

func TestBatch_FirstErrorWins(t *testing.T) {
	a := pureAdapter(t, WithWorkers(1))

	jobs := []Job{
		{Func: "SMA", Inputs: map[string][]float64{"real": ramp(10)}, Params: map[string]float64{"timeperiod": 2}},
		{Func: "ADD", Inputs: map[string][]float64{"real0": {1, 2}, "real1": {3}}},
	}
	_, err := a.Batch(context.Background(), jobs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrShapeMismatch))
	assert.Contains(t, err.Error(), "job 1 (ADD)")
}

func TestBatch_Canceled(t *testing.T) {
	a := pureAdapter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Batch(ctx, []Job{{Func: "SMA", Inputs: map[string][]float64{"real": ramp(10)}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatch_Empty(t *testing.T) {
	a := pureAdapter(t)
	results, err := a.Batch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
