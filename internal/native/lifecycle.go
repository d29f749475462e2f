package native

import (
	"fmt"
	"sync"

	"github.com/newthinker/tacall/internal/core"
	"go.uber.org/zap"
)

// Mode selects how the library lifecycle is shared between calls.
type Mode string

const (
	// ModePinned initializes on first Acquire and stays initialized until Close.
	ModePinned Mode = "pinned"
	// ModeRefCount initializes when the first call enters and shuts down
	// when the last in-flight call leaves.
	ModeRefCount Mode = "refcount"
)

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePinned, "":
		return ModePinned, nil
	case ModeRefCount:
		return ModeRefCount, nil
	}
	return "", core.Errorf(core.ErrConfigInvalid, "unknown lifecycle mode %q", s)
}

// Lifecycle guards the process-wide initialized state of a Library.
type Lifecycle struct {
	mu          sync.Mutex
	lib         Library
	mode        Mode
	refs        int
	initialized bool
	closed      bool
	logger      *zap.Logger
}

// NewLifecycle wraps lib. A nil logger disables logging.
func NewLifecycle(lib Library, mode Mode, logger *zap.Logger) *Lifecycle {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == "" {
		mode = ModePinned
	}
	return &Lifecycle{lib: lib, mode: mode, logger: logger}
}

// Mode returns the configured mode.
func (l *Lifecycle) Mode() Mode { return l.mode }

// Acquire guarantees the library is initialized until the matching Release.
func (l *Lifecycle) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return core.Errorf(core.ErrLifecycleFailed, "%s library already closed", l.lib.Name())
	}
	if !l.initialized {
		if rc := l.lib.Initialize(); !rc.OK() {
			return core.WrapError(core.ErrLifecycleFailed, &StatusError{Func: "Initialize", Code: rc})
		}
		l.initialized = true
		l.logger.Debug("native library initialized",
			zap.String("library", l.lib.Name()),
			zap.String("mode", string(l.mode)),
		)
	}
	l.refs++
	return nil
}

// Release ends a call started with Acquire.
func (l *Lifecycle) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs == 0 {
		return
	}
	l.refs--
	if l.mode == ModeRefCount && l.refs == 0 {
		l.shutdownLocked()
	}
}

// Close shuts the library down. It fails while calls are in flight.
func (l *Lifecycle) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs > 0 {
		return core.WrapError(core.ErrLifecycleFailed,
			fmt.Errorf("%d calls still in flight", l.refs))
	}
	l.closed = true
	if rc := l.shutdownLocked(); !rc.OK() {
		return core.WrapError(core.ErrLifecycleFailed, &StatusError{Func: "Shutdown", Code: rc})
	}
	return nil
}

func (l *Lifecycle) shutdownLocked() RetCode {
	if !l.initialized {
		return Success
	}
	rc := l.lib.Shutdown()
	l.initialized = false
	l.logger.Debug("native library shut down",
		zap.String("library", l.lib.Name()),
		zap.Stringer("status", rc),
	)
	return rc
}

// Refs returns the number of calls currently holding the library.
func (l *Lifecycle) Refs() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refs
}

// Initialized reports whether the library is currently initialized.
func (l *Lifecycle) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}
