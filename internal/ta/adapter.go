// Package ta calls technical-analysis functions through a native.Library.
//
// Every call follows the same protocol: validate the input shapes, acquire
// the library lifecycle, hand the native side one buffer per output sized
// to the input, and truncate each output to the count the library reports.
// Output i corresponds to input Begin+i.
package ta

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"github.com/newthinker/tacall/internal/native/gotalib"
	"go.uber.org/zap"
)

const defaultWorkers = 4

// Recorder receives call telemetry. *metrics.Registry implements it.
type Recorder interface {
	RecordCall(function, status string, duration float64)
	RecordBatchJob(status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordCall(string, string, float64) {}
func (nopRecorder) RecordBatchJob(string)              {}

// Adapter is safe for concurrent use.
type Adapter struct {
	lib      native.Library
	life     *native.Lifecycle
	mode     native.Mode
	catalog  *catalog.Catalog
	logger   *zap.Logger
	recorder Recorder
	workers  int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRecorder sets the telemetry sink.
func WithRecorder(r Recorder) Option {
	return func(a *Adapter) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithCatalog replaces the embedded function catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *Adapter) {
		if c != nil {
			a.catalog = c
		}
	}
}

// WithLifecycle selects how the library is initialized and shut down.
func WithLifecycle(mode native.Mode) Option {
	return func(a *Adapter) { a.mode = mode }
}

// WithWorkers bounds the concurrency of Batch.
func WithWorkers(n int) Option {
	return func(a *Adapter) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New creates an Adapter over lib.
func New(lib native.Library, opts ...Option) *Adapter {
	a := &Adapter{
		lib:      lib,
		mode:     native.ModePinned,
		catalog:  catalog.Default(),
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.life = native.NewLifecycle(lib, a.mode, a.logger)
	return a
}

var (
	defaultOnce    sync.Once
	defaultAdapter atomic.Pointer[Adapter]
)

// Default returns the process-wide adapter used by the typed functions.
// Unless SetDefault installed another one, it runs the pure-Go backend
// with a pinned lifecycle.
func Default() *Adapter {
	defaultOnce.Do(func() {
		defaultAdapter.CompareAndSwap(nil, New(gotalib.New(nil, nil)))
	})
	return defaultAdapter.Load()
}

// SetDefault replaces the process-wide adapter. The previous one is
// returned so the caller can close it.
func SetDefault(a *Adapter) *Adapter {
	defaultOnce.Do(func() {})
	return defaultAdapter.Swap(a)
}

// Catalog returns the function catalog in use.
func (a *Adapter) Catalog() *catalog.Catalog { return a.catalog }

// Backend returns the library name.
func (a *Adapter) Backend() string { return a.lib.Name() }

// Supports reports whether the backend computes name. Unknown names are
// not supported.
func (a *Adapter) Supports(name string) bool {
	fn, err := a.catalog.Lookup(name)
	if err != nil {
		return false
	}
	return native.Supports(a.lib, fn.Name)
}

// Refs returns the number of calls in flight.
func (a *Adapter) Refs() int { return a.life.Refs() }

// Call computes name over positional inputs, in catalog order. Missing
// trailing params take their defaults.
func (a *Adapter) Call(name string, inputs [][]float64, params ...float64) (*Result, error) {
	fn, err := a.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	opts, err := fn.ResolveOptions(params)
	if err != nil {
		return nil, err
	}
	return a.call(fn, inputs, opts)
}

// CallNamed computes name with inputs and params keyed by their catalog
// names.
func (a *Adapter) CallNamed(name string, inputs map[string][]float64, params map[string]float64) (*Result, error) {
	fn, err := a.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	positional := make([][]float64, len(fn.Inputs))
	for i, in := range fn.Inputs {
		data, ok := inputs[in.Name]
		if !ok {
			return nil, core.Errorf(core.ErrInvalidInput, "%s: missing input %q", fn.Name, in.Name)
		}
		positional[i] = data
	}
	if len(inputs) != len(fn.Inputs) {
		for key := range inputs {
			if !hasInput(fn, key) {
				return nil, core.Errorf(core.ErrInvalidInput, "%s has no input %q", fn.Name, key)
			}
		}
	}
	opts, err := fn.ResolveNamed(params)
	if err != nil {
		return nil, err
	}
	return a.call(fn, positional, opts)
}

func hasInput(fn *catalog.Function, name string) bool {
	for _, in := range fn.Inputs {
		if in.Name == name {
			return true
		}
	}
	return false
}

// Lookback returns how many leading inputs name consumes before its first
// output.
func (a *Adapter) Lookback(name string, params ...float64) (int, error) {
	fn, err := a.catalog.Lookup(name)
	if err != nil {
		return 0, err
	}
	opts, err := fn.ResolveOptions(params)
	if err != nil {
		return 0, err
	}
	n, rc := a.lib.Lookback(&native.Request{Func: fn.Name, Options: opts})
	if !rc.OK() {
		return 0, core.WrapError(core.ErrComputationFailed, &native.StatusError{Func: fn.Name, Code: rc})
	}
	return n, nil
}

// Close shuts the library down. Calls after Close fail.
func (a *Adapter) Close() error {
	return a.life.Close()
}

func (a *Adapter) call(fn *catalog.Function, inputs [][]float64, opts []native.Option) (res *Result, err error) {
	if len(inputs) != len(fn.Inputs) {
		return nil, core.Errorf(core.ErrInvalidInput,
			"%s takes %d inputs, got %d", fn.Name, len(fn.Inputs), len(inputs))
	}
	n := len(inputs[0])
	for i, in := range inputs[1:] {
		if len(in) != n {
			return nil, core.Errorf(core.ErrShapeMismatch, "%s: %s has %d values, %s has %d",
				fn.Name, fn.Inputs[0].Name, n, fn.Inputs[i+1].Name, len(in))
		}
	}

	if err := fn.CheckOptions(opts); err != nil {
		a.recorder.RecordCall(fn.Name, native.BadParam.String(), 0)
		return nil, core.WrapError(core.ErrComputationFailed,
			fmt.Errorf("%w: %v", &native.StatusError{Func: fn.Name, Code: native.BadParam}, err))
	}

	res = &Result{Func: fn.Name, Names: fn.OutputNames(), Outputs: make([]core.Series, len(fn.Outputs))}
	if n == 0 {
		for i := range res.Outputs {
			res.Outputs[i] = []float64{}
		}
		return res, nil
	}

	start := time.Now()
	status := "ok"
	defer func() {
		a.recorder.RecordCall(fn.Name, status, time.Since(start).Seconds())
		if err != nil {
			a.logger.Warn("indicator call failed", zap.String("function", fn.Name), zap.Error(err))
		}
	}()

	if err := a.life.Acquire(); err != nil {
		status = "lifecycle"
		return nil, err
	}
	defer a.life.Release()

	req := &native.Request{
		Func:    fn.Name,
		EndIdx:  n - 1,
		Inputs:  make([]native.Input, len(inputs)),
		Options: opts,
		Outputs: make([]*native.OutBuffer, len(fn.Outputs)),
	}
	for i, in := range inputs {
		req.Inputs[i] = native.Input{Kind: fn.Inputs[i].Kind, Data: in}
	}
	for i := range req.Outputs {
		req.Outputs[i] = native.NewOutBuffer(n)
	}

	begin, count, rc := a.lib.Call(req)
	if !rc.OK() {
		status = rc.String()
		return nil, core.WrapError(core.ErrComputationFailed, &native.StatusError{Func: fn.Name, Code: rc})
	}
	if begin < 0 || count < 0 || begin+count > n {
		status = "overrun"
		return nil, core.Errorf(core.ErrComputationFailed,
			"%s reported begin %d count %d for %d inputs", fn.Name, begin, count, n)
	}
	for i, out := range req.Outputs {
		if err := out.Commit(count); err != nil {
			status = "overrun"
			return nil, core.WrapError(core.ErrComputationFailed, fmt.Errorf("%s: %w", fn.Name, err))
		}
		res.Outputs[i] = out.Values()
	}
	res.Begin = begin
	return res, nil
}
