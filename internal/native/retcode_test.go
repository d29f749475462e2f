package native

import "testing"

func TestRetCode_String(t *testing.T) {
	tests := []struct {
		rc   RetCode
		want string
	}{
		{Success, "TA_SUCCESS"},
		{BadParam, "TA_BAD_PARAM"},
		{OutOfRangeEndIndex, "TA_OUT_OF_RANGE_END_INDEX"},
		{InternalError, "TA_INTERNAL_ERROR"},
		{InternalError + 17, "TA_INTERNAL_ERROR(17)"},
		{UnknownErr, "TA_UNKNOWN_ERR"},
		{RetCode(42), "TA_RETCODE(42)"},
	}

	for _, tt := range tests {
		if got := tt.rc.String(); got != tt.want {
			t.Errorf("RetCode(%d).String() = %q, want %q", int(tt.rc), got, tt.want)
		}
	}
}

func TestRetCode_OK(t *testing.T) {
	if !Success.OK() {
		t.Error("Success should be OK")
	}
	if BadParam.OK() {
		t.Error("BadParam should not be OK")
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Func: "SMA", Code: BadParam}
	want := "SMA returned TA_BAD_PARAM (2)"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
