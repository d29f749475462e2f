package ta

import (
	"errors"

	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
)

// Result holds the outputs of one call. Every output has the same length
// and Outputs[k][i] corresponds to input Begin+i. NaN and infinite values
// encode as JSON strings, see core.Series.
type Result struct {
	Func    string      `json:"func"`
	Begin   int         `json:"begin"`
	Names   []string    `json:"names"`
	Outputs []core.Series `json:"outputs"`
}

// Output returns the named output, or nil.
func (r *Result) Output(name string) []float64 {
	for i, n := range r.Names {
		if n == name {
			return r.Outputs[i]
		}
	}
	return nil
}

// Len returns the number of values in each output.
func (r *Result) Len() int {
	if len(r.Outputs) == 0 {
		return 0
	}
	return len(r.Outputs[0])
}

// StatusCode extracts the native status carried by a computation error.
func StatusCode(err error) (native.RetCode, bool) {
	var se *native.StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
