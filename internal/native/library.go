// Package native defines the boundary to the technical-analysis computation
// library: its status codes, its calling convention and its lifecycle.
package native

import "github.com/newthinker/tacall/internal/core"

// Library is a computation engine speaking the TA-Lib calling convention.
// Implementations must be safe for concurrent Call and Lookback once
// initialized; Initialize and Shutdown are serialized by Lifecycle.
type Library interface {
	Name() string
	Initialize() RetCode
	Shutdown() RetCode

	// Call computes req.Func over inputs[StartIdx:EndIdx+1], writing each
	// output from index 0 of the matching buffer. begin is the input index
	// of the first output value and count the number of values written.
	Call(req *Request) (begin, count int, rc RetCode)

	// Lookback returns how many leading inputs the function consumes
	// before producing its first output, for the given options.
	Lookback(req *Request) (int, RetCode)
}

// Input is one named input sequence.
type Input struct {
	Kind core.SeriesKind
	Data []float64
}

// Option is one optional scalar parameter, in declaration order.
type Option struct {
	Name    string
	Value   float64
	Integer bool
}

// Int returns the value truncated to an integer.
func (o Option) Int() int { return int(o.Value) }

// Request is the argument block of a single native call.
type Request struct {
	Func     string
	StartIdx int
	EndIdx   int
	Inputs   []Input
	Options  []Option
	Outputs  []*OutBuffer
}

// Input returns the first input of the given kind.
func (r *Request) Input(kind core.SeriesKind) ([]float64, bool) {
	for _, in := range r.Inputs {
		if in.Kind == kind {
			return in.Data, true
		}
	}
	return nil, false
}

// Supporter is implemented by libraries that compute only part of the
// catalog.
type Supporter interface {
	Supports(name string) bool
}

// Supports reports whether lib computes the named function. Libraries that
// do not implement Supporter are taken to compute all of them.
func Supports(lib Library, name string) bool {
	if s, ok := lib.(Supporter); ok {
		return s.Supports(name)
	}
	return true
}
