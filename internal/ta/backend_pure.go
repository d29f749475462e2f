//go:build !talib_cgo

package ta

import (
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"go.uber.org/zap"
)

func nativeBackend(*zap.Logger) (native.Library, error) {
	return nil, core.Errorf(core.ErrConfigInvalid, "backend %q requires a build with -tags talib_cgo", BackendNative)
}
