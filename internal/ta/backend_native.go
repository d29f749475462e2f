//go:build talib_cgo

package ta

import (
	"github.com/newthinker/tacall/internal/native"
	"github.com/newthinker/tacall/internal/native/cabi"
	"go.uber.org/zap"
)

func nativeBackend(logger *zap.Logger) (native.Library, error) {
	return cabi.New(logger), nil
}
