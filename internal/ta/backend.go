package ta

import (
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"github.com/newthinker/tacall/internal/native/gotalib"
	"go.uber.org/zap"
)

// Backend names accepted by NewBackend.
const (
	BackendGoTalib = "gotalib"
	BackendNative  = "native"
)

// NewBackend creates the library named by the engine configuration.
// The native backend needs a binary built with -tags talib_cgo.
func NewBackend(name string, logger *zap.Logger) (native.Library, error) {
	switch name {
	case "", BackendGoTalib:
		return gotalib.New(nil, logger), nil
	case BackendNative:
		return nativeBackend(logger)
	default:
		return nil, core.Errorf(core.ErrConfigInvalid, "unknown engine backend %q", name)
	}
}
