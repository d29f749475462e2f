package native

import "fmt"

// RetCode is the status returned by every native call. Values match TA_RetCode.
type RetCode int

const (
	Success                RetCode = 0
	LibNotInitialize       RetCode = 1
	BadParam               RetCode = 2
	AllocErr               RetCode = 3
	GroupNotFound          RetCode = 4
	FuncNotFound           RetCode = 5
	InvalidHandle          RetCode = 6
	InvalidParamHolder     RetCode = 7
	InvalidParamHolderType RetCode = 8
	InvalidParamFunction   RetCode = 9
	InputNotAllInitialize  RetCode = 10
	OutputNotAllInitialize RetCode = 11
	OutOfRangeStartIndex   RetCode = 12
	OutOfRangeEndIndex     RetCode = 13
	InvalidListType        RetCode = 14
	BadObject              RetCode = 15
	NotSupported           RetCode = 16
	InternalError          RetCode = 5000
	UnknownErr             RetCode = 0xFFFF
)

var retCodeNames = map[RetCode]string{
	Success:                "TA_SUCCESS",
	LibNotInitialize:       "TA_LIB_NOT_INITIALIZE",
	BadParam:               "TA_BAD_PARAM",
	AllocErr:               "TA_ALLOC_ERR",
	GroupNotFound:          "TA_GROUP_NOT_FOUND",
	FuncNotFound:           "TA_FUNC_NOT_FOUND",
	InvalidHandle:          "TA_INVALID_HANDLE",
	InvalidParamHolder:     "TA_INVALID_PARAM_HOLDER",
	InvalidParamHolderType: "TA_INVALID_PARAM_HOLDER_TYPE",
	InvalidParamFunction:   "TA_INVALID_PARAM_FUNCTION",
	InputNotAllInitialize:  "TA_INPUT_NOT_ALL_INITIALIZE",
	OutputNotAllInitialize: "TA_OUTPUT_NOT_ALL_INITIALIZE",
	OutOfRangeStartIndex:   "TA_OUT_OF_RANGE_START_INDEX",
	OutOfRangeEndIndex:     "TA_OUT_OF_RANGE_END_INDEX",
	InvalidListType:        "TA_INVALID_LIST_TYPE",
	BadObject:              "TA_BAD_OBJECT",
	NotSupported:           "TA_NOT_SUPPORTED",
	InternalError:          "TA_INTERNAL_ERROR",
	UnknownErr:             "TA_UNKNOWN_ERR",
}

func (rc RetCode) String() string {
	if name, ok := retCodeNames[rc]; ok {
		return name
	}
	// TA-Lib reports internal errors as 5000 + an internal id.
	if rc > InternalError && rc < UnknownErr {
		return fmt.Sprintf("TA_INTERNAL_ERROR(%d)", int(rc-InternalError))
	}
	return fmt.Sprintf("TA_RETCODE(%d)", int(rc))
}

// OK reports whether the code signals success.
func (rc RetCode) OK() bool { return rc == Success }

// StatusError carries a non-success status for a named function.
type StatusError struct {
	Func string
	Code RetCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s (%d)", e.Func, e.Code, int(e.Code))
}
