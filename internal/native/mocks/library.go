// Package mocks provides a scriptable native.Library for testing.
package mocks

import (
	"sync"
	"sync/atomic"

	"github.com/newthinker/tacall/internal/native"
)

// CallFunc computes a request on behalf of the mock.
type CallFunc func(req *native.Request) (begin, count int, rc native.RetCode)

// MockLibrary implements native.Library. It enforces the initialized state
// the way TA-Lib does and counts every lifecycle transition and call.
type MockLibrary struct {
	mu sync.RWMutex

	initialized atomic.Bool
	inits       atomic.Int64
	shutdowns   atomic.Int64
	calls       atomic.Int64

	// Set to make Initialize fail.
	initCode native.RetCode

	fns      map[string]CallFunc
	lookback map[string]int
}

// New creates a MockLibrary with no functions registered.
func New() *MockLibrary {
	return &MockLibrary{
		fns:      make(map[string]CallFunc),
		lookback: make(map[string]int),
	}
}

// Name returns the library identifier.
func (m *MockLibrary) Name() string { return "mock" }

// On registers the behaviour of a function.
func (m *MockLibrary) On(name string, fn CallFunc) *MockLibrary {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fns[name] = fn
	return m
}

// SetLookback fixes the lookback reported for a function.
func (m *MockLibrary) SetLookback(name string, n int) *MockLibrary {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookback[name] = n
	return m
}

// FailInitialize makes subsequent Initialize calls return rc.
func (m *MockLibrary) FailInitialize(rc native.RetCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initCode = rc
}

// Initialize implements native.Library.
func (m *MockLibrary) Initialize() native.RetCode {
	m.mu.RLock()
	rc := m.initCode
	m.mu.RUnlock()
	if !rc.OK() {
		return rc
	}
	m.inits.Add(1)
	m.initialized.Store(true)
	return native.Success
}

// Shutdown implements native.Library.
func (m *MockLibrary) Shutdown() native.RetCode {
	if !m.initialized.Swap(false) {
		return native.LibNotInitialize
	}
	m.shutdowns.Add(1)
	return native.Success
}

// Call implements native.Library.
func (m *MockLibrary) Call(req *native.Request) (int, int, native.RetCode) {
	m.calls.Add(1)
	if !m.initialized.Load() {
		return 0, 0, native.LibNotInitialize
	}
	m.mu.RLock()
	fn, ok := m.fns[req.Func]
	m.mu.RUnlock()
	if !ok {
		return 0, 0, native.FuncNotFound
	}
	return fn(req)
}

// Lookback implements native.Library.
func (m *MockLibrary) Lookback(req *native.Request) (int, native.RetCode) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.lookback[req.Func]
	if !ok {
		return 0, native.FuncNotFound
	}
	return n, native.Success
}

// Initialized reports the current state.
func (m *MockLibrary) Initialized() bool { return m.initialized.Load() }

// Inits returns how many times Initialize succeeded.
func (m *MockLibrary) Inits() int64 { return m.inits.Load() }

// Shutdowns returns how many times Shutdown succeeded.
func (m *MockLibrary) Shutdowns() int64 { return m.shutdowns.Load() }

// Calls returns how many times Call was invoked.
func (m *MockLibrary) Calls() int64 { return m.calls.Load() }

// Copy returns a CallFunc that echoes the first input into every output,
// skipping the first lookback values.
func Copy(lookback int) CallFunc {
	return func(req *native.Request) (int, int, native.RetCode) {
		in := req.Inputs[0].Data[:req.EndIdx+1]
		start := max(req.StartIdx, lookback)
		if start > req.EndIdx {
			return 0, 0, native.Success
		}
		for _, out := range req.Outputs {
			copy(out.Raw(), in[start:])
		}
		return start, req.EndIdx - start + 1, native.Success
	}
}

// Status returns a CallFunc that always fails with rc.
func Status(rc native.RetCode) CallFunc {
	return func(*native.Request) (int, int, native.RetCode) {
		return 0, 0, rc
	}
}

// Overrun returns a CallFunc that reports more values than any buffer holds.
func Overrun() CallFunc {
	return func(req *native.Request) (int, int, native.RetCode) {
		return 0, req.EndIdx + 2, native.Success
	}
}
