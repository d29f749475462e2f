// Package gotalib is a pure-Go native.Library. It speaks the TA-Lib calling
// convention on top of github.com/markcheno/go-talib so the adapter runs
// without the C library installed.
package gotalib

import (
	"fmt"
	"sync/atomic"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/native"
	"go.uber.org/zap"
)

// Library implements native.Library over go-talib.
type Library struct {
	catalog     *catalog.Catalog
	logger      *zap.Logger
	initialized atomic.Bool
}

// New creates a Library. A nil catalog selects the embedded one.
func New(cat *catalog.Catalog, logger *zap.Logger) *Library {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{catalog: cat, logger: logger}
}

// Name implements native.Library.
func (l *Library) Name() string { return "gotalib" }

// Initialize implements native.Library. Repeated calls are harmless.
func (l *Library) Initialize() native.RetCode {
	l.initialized.Store(true)
	return native.Success
}

// Shutdown implements native.Library.
func (l *Library) Shutdown() native.RetCode {
	if !l.initialized.Swap(false) {
		return native.LibNotInitialize
	}
	return native.Success
}

// Supports reports whether the backend computes the named function.
func (l *Library) Supports(name string) bool {
	_, ok := entries[name]
	return ok
}

// Lookback implements native.Library. Like TA-Lib, it does not require
// the library to be initialized.
func (l *Library) Lookback(req *native.Request) (int, native.RetCode) {
	e, _, rc := l.resolve(req)
	if !rc.OK() {
		return 0, rc
	}
	return e.lookback(args{opts: req.Options}), native.Success
}

// Call implements native.Library.
func (l *Library) Call(req *native.Request) (begin, count int, rc native.RetCode) {
	if !l.initialized.Load() {
		return 0, 0, native.LibNotInitialize
	}
	e, fn, rc := l.resolve(req)
	if !rc.OK() {
		return 0, 0, rc
	}
	if req.StartIdx < 0 {
		return 0, 0, native.OutOfRangeStartIndex
	}
	if req.EndIdx < 0 || req.EndIdx < req.StartIdx {
		return 0, 0, native.OutOfRangeEndIndex
	}
	if len(req.Inputs) != len(fn.Inputs) || len(req.Outputs) != len(fn.Outputs) {
		return 0, 0, native.BadParam
	}

	n := req.EndIdx + 1
	a := args{opts: req.Options, in: make([][]float64, len(req.Inputs))}
	for i, in := range req.Inputs {
		if len(in.Data) < n {
			return 0, 0, native.BadParam
		}
		a.in[i] = in.Data[:n]
	}
	for _, out := range req.Outputs {
		if out == nil {
			return 0, 0, native.BadParam
		}
	}

	begin = max(req.StartIdx, e.lookback(a))
	if begin > req.EndIdx {
		return 0, 0, native.Success
	}

	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("computation panicked",
				zap.String("function", req.Func),
				zap.String("panic", fmt.Sprint(r)))
			begin, count, rc = 0, 0, native.InternalError
		}
	}()

	outs := e.run(a)
	if len(outs) != len(req.Outputs) {
		return 0, 0, native.InternalError
	}
	for i, out := range outs {
		if len(out) < n {
			return 0, 0, native.InternalError
		}
		copy(req.Outputs[i].Raw(), out[begin:n])
	}
	return begin, n - begin, native.Success
}

// resolve finds the computation and validates the options against the
// catalog ranges.
func (l *Library) resolve(req *native.Request) (entry, *catalog.Function, native.RetCode) {
	e, ok := entries[req.Func]
	if !ok {
		return entry{}, nil, native.FuncNotFound
	}
	fn, err := l.catalog.Lookup(req.Func)
	if err != nil {
		return entry{}, nil, native.FuncNotFound
	}
	if err := fn.CheckOptions(req.Options); err != nil {
		l.logger.Debug("rejected parameters", zap.String("function", req.Func), zap.Error(err))
		return entry{}, nil, native.BadParam
	}
	return e, fn, native.Success
}
