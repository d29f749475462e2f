package core

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_MarshalNonFinite(t *testing.T) {
	s := Series{1.5, math.NaN(), math.Inf(1), math.Inf(-1), 0}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5,"NaN","+Inf","-Inf",0]`, string(data))

	var back Series
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 5)
	assert.Equal(t, 1.5, back[0])
	assert.True(t, math.IsNaN(back[1]))
	assert.True(t, math.IsInf(back[2], 1))
	assert.True(t, math.IsInf(back[3], -1))
	assert.Equal(t, 0.0, back[4])
}

func TestSeries_MarshalEmptyAndNil(t *testing.T) {
	data, err := json.Marshal(Series{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = json.Marshal(Series(nil))
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestSeries_MarshalInsideStruct(t *testing.T) {
	v := struct {
		Outputs []Series `json:"outputs"`
	}{Outputs: []Series{{math.NaN(), 2}}}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"outputs":[["NaN",2]]}`, string(data))
}

func TestSeries_UnmarshalNullElement(t *testing.T) {
	var s Series
	require.NoError(t, json.Unmarshal([]byte(`[null, 3]`), &s))
	assert.True(t, math.IsNaN(s[0]))
	assert.Equal(t, 3.0, s[1])
}

func TestSeries_UnmarshalRejectsText(t *testing.T) {
	var s Series
	assert.Error(t, json.Unmarshal([]byte(`["abc"]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}
