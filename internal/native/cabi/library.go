//go:build talib_cgo

// Package cabi binds native.Library to the TA-Lib C library through its
// abstract interface. Build with -tags talib_cgo and libta-lib installed.
package cabi

/*
#cgo LDFLAGS: -lta-lib -lm
#include <stdlib.h>
#include <ta-lib/ta_libc.h>
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"go.uber.org/zap"
)

// Library implements native.Library over libta-lib.
type Library struct {
	logger *zap.Logger
}

// New creates a Library.
func New(logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{logger: logger}
}

// Name implements native.Library.
func (l *Library) Name() string { return "ta-lib" }

// Initialize implements native.Library.
func (l *Library) Initialize() native.RetCode {
	return native.RetCode(C.TA_Initialize())
}

// Shutdown implements native.Library.
func (l *Library) Shutdown() native.RetCode {
	return native.RetCode(C.TA_Shutdown())
}

// Version returns the linked TA-Lib version string.
func (l *Library) Version() string {
	return C.GoString(C.TA_GetVersionString())
}

// Lookback implements native.Library.
func (l *Library) Lookback(req *native.Request) (int, native.RetCode) {
	h, rc := open(req.Func)
	if !rc.OK() {
		return 0, rc
	}
	defer h.free()

	if rc := h.setOptions(req.Options); !rc.OK() {
		return 0, rc
	}
	var lookback C.TA_Integer
	if rc := native.RetCode(C.TA_GetLookback(h.params, &lookback)); !rc.OK() {
		return 0, rc
	}
	return int(lookback), native.Success
}

// Call implements native.Library. Every Go buffer handed to the parameter
// holder stays pinned until TA_CallFunc returns.
func (l *Library) Call(req *native.Request) (int, int, native.RetCode) {
	h, rc := open(req.Func)
	if !rc.OK() {
		return 0, 0, rc
	}
	defer h.free()

	var pinner runtime.Pinner
	defer pinner.Unpin()

	if rc := h.setInputs(req, &pinner); !rc.OK() {
		return 0, 0, rc
	}
	if rc := h.setOptions(req.Options); !rc.OK() {
		return 0, 0, rc
	}
	integers, rc := h.setOutputs(req.Outputs, &pinner)
	if !rc.OK() {
		return 0, 0, rc
	}

	var begin, count C.TA_Integer
	rc = native.RetCode(C.TA_CallFunc(h.params,
		C.TA_Integer(req.StartIdx), C.TA_Integer(req.EndIdx), &begin, &count))
	if !rc.OK() {
		l.logger.Debug("TA_CallFunc failed", zap.String("function", req.Func), zap.Stringer("status", rc))
		return 0, 0, rc
	}

	// Integer outputs were written into scratch buffers; widen them.
	for i, buf := range integers {
		if buf == nil {
			continue
		}
		raw := req.Outputs[i].Raw()
		for j := 0; j < int(count) && j < len(raw); j++ {
			raw[j] = float64(buf[j])
		}
	}
	return int(begin), int(count), native.Success
}

// holder wraps one allocated TA_ParamHolder.
type holder struct {
	handle *C.TA_FuncHandle
	info   *C.TA_FuncInfo
	params *C.TA_ParamHolder
}

func open(name string) (*holder, native.RetCode) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	h := &holder{}
	if rc := native.RetCode(C.TA_GetFuncHandle(cname, &h.handle)); !rc.OK() {
		return nil, rc
	}
	if rc := native.RetCode(C.TA_GetFuncInfo(h.handle, &h.info)); !rc.OK() {
		return nil, rc
	}
	if rc := native.RetCode(C.TA_ParamHolderAlloc(h.handle, &h.params)); !rc.OK() {
		return nil, rc
	}
	return h, native.Success
}

func (h *holder) free() {
	C.TA_ParamHolderFree(h.params)
}

func pin(p *runtime.Pinner, data []float64) *C.TA_Real {
	if len(data) == 0 {
		return nil
	}
	p.Pin(&data[0])
	return (*C.TA_Real)(unsafe.Pointer(&data[0]))
}

var priceFlags = []struct {
	flag C.int
	kind core.SeriesKind
}{
	{C.TA_IN_PRICE_OPEN, core.SeriesOpen},
	{C.TA_IN_PRICE_HIGH, core.SeriesHigh},
	{C.TA_IN_PRICE_LOW, core.SeriesLow},
	{C.TA_IN_PRICE_CLOSE, core.SeriesClose},
	{C.TA_IN_PRICE_VOLUME, core.SeriesVolume},
}

// setInputs binds price components by flag and the remaining sequences
// positionally to the real parameters.
func (h *holder) setInputs(req *native.Request, p *runtime.Pinner) native.RetCode {
	var others [][]float64
	for _, in := range req.Inputs {
		if !in.Kind.IsPrice() {
			others = append(others, in.Data)
		}
	}

	for i := C.uint(0); i < h.info.nbInput; i++ {
		var info *C.TA_InputParameterInfo
		if rc := native.RetCode(C.TA_GetInputParameterInfo(h.handle, i, &info)); !rc.OK() {
			return rc
		}

		switch info._type {
		case C.TA_Input_Price:
			var ptrs [5]*C.TA_Real
			for k, pf := range priceFlags {
				if C.int(info.flags)&pf.flag == 0 {
					continue
				}
				data, ok := req.Input(pf.kind)
				if !ok {
					return native.BadParam
				}
				ptrs[k] = pin(p, data)
			}
			rc := native.RetCode(C.TA_SetInputParamPricePtr(h.params, i,
				ptrs[0], ptrs[1], ptrs[2], ptrs[3], ptrs[4], nil))
			if !rc.OK() {
				return rc
			}
		case C.TA_Input_Real:
			if len(others) == 0 {
				return native.BadParam
			}
			rc := native.RetCode(C.TA_SetInputParamRealPtr(h.params, i, pin(p, others[0])))
			if !rc.OK() {
				return rc
			}
			others = others[1:]
		default:
			return native.NotSupported
		}
	}
	return native.Success
}

func (h *holder) setOptions(opts []native.Option) native.RetCode {
	if len(opts) != int(h.info.nbOptInput) {
		return native.BadParam
	}
	for i, opt := range opts {
		var info *C.TA_OptInputParameterInfo
		if rc := native.RetCode(C.TA_GetOptInputParameterInfo(h.handle, C.uint(i), &info)); !rc.OK() {
			return rc
		}

		var rc native.RetCode
		switch info._type {
		case C.TA_OptInput_IntegerRange, C.TA_OptInput_IntegerList:
			rc = native.RetCode(C.TA_SetOptInputParamInteger(h.params, C.uint(i), C.TA_Integer(opt.Int())))
		default:
			rc = native.RetCode(C.TA_SetOptInputParamReal(h.params, C.uint(i), C.TA_Real(opt.Value)))
		}
		if !rc.OK() {
			return rc
		}
	}
	return native.Success
}

// setOutputs binds real outputs directly to the caller buffers. Integer
// outputs get a scratch buffer of the same capacity, returned by index.
func (h *holder) setOutputs(outs []*native.OutBuffer, p *runtime.Pinner) ([][]C.TA_Integer, native.RetCode) {
	if len(outs) != int(h.info.nbOutput) {
		return nil, native.BadParam
	}
	integers := make([][]C.TA_Integer, len(outs))
	for i, out := range outs {
		if out == nil || out.Cap() == 0 {
			return nil, native.BadParam
		}
		var info *C.TA_OutputParameterInfo
		if rc := native.RetCode(C.TA_GetOutputParameterInfo(h.handle, C.uint(i), &info)); !rc.OK() {
			return nil, rc
		}

		var rc native.RetCode
		switch info._type {
		case C.TA_Output_Integer:
			buf := make([]C.TA_Integer, out.Cap())
			p.Pin(&buf[0])
			integers[i] = buf
			rc = native.RetCode(C.TA_SetOutputParamIntegerPtr(h.params, C.uint(i), &buf[0]))
		default:
			rc = native.RetCode(C.TA_SetOutputParamRealPtr(h.params, C.uint(i), pin(p, out.Raw())))
		}
		if !rc.OK() {
			return nil, rc
		}
	}
	return integers, native.Success
}
