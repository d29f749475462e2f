// internal/api/handler/api/handler_test.go
package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/newthinker/tacall/internal/api/response"
	"github.com/newthinker/tacall/internal/native/gotalib"
	"github.com/newthinker/tacall/internal/storage/archive"
	"github.com/newthinker/tacall/internal/ta"
	"go.uber.org/zap"
)

func newAdapter(t *testing.T) *ta.Adapter {
	t.Helper()
	a := ta.New(gotalib.New(nil, nil))
	t.Cleanup(func() { a.Close() })
	return a
}

func newResults(t *testing.T) *archive.ResultStore {
	t.Helper()
	fs, err := archive.NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatalf("creating archive: %v", err)
	}
	return archive.NewResultStore(fs, zap.NewNop())
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp response.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	return data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var resp response.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	return resp.Error
}
