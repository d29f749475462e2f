// internal/api/handler/api/functions_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newthinker/tacall/internal/catalog"
)

func TestFunctionsHandler_List(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), nil)

	req := httptest.NewRequest("GET", "/api/v1/functions", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeData(t, w)
	if int(data["count"].(float64)) != catalog.Default().Len() {
		t.Errorf("expected %d functions, got %v", catalog.Default().Len(), data["count"])
	}
}

func TestFunctionsHandler_ListGroup(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), nil)

	req := httptest.NewRequest("GET", "/api/v1/functions?group=Pattern+Recognition", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeData(t, w)
	if int(data["count"].(float64)) != 61 {
		t.Errorf("expected 61 patterns, got %v", data["count"])
	}
}

func TestFunctionsHandler_ListSupported(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), newAdapter(t))

	req := httptest.NewRequest("GET", "/api/v1/functions?group=Overlap+Studies", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	supported := make(map[string]bool)
	for _, item := range decodeData(t, w)["functions"].([]any) {
		fn := item.(map[string]any)
		supported[fn["name"].(string)] = fn["supported"].(bool)
	}
	if supported["ACCBANDS"] {
		t.Error("expected ACCBANDS to be unsupported on the pure-Go backend")
	}
	if !supported["BBANDS"] {
		t.Error("expected BBANDS to be supported")
	}

	req = httptest.NewRequest("GET", "/api/v1/functions?group=Overlap+Studies&supported=true", nil)
	w = httptest.NewRecorder()
	handler.List(w, req)

	for _, item := range decodeData(t, w)["functions"].([]any) {
		if name := item.(map[string]any)["name"]; name == "ACCBANDS" {
			t.Error("expected ACCBANDS to be filtered out")
		}
	}
}

func TestFunctionsHandler_ListUnknownGroup(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), nil)

	req := httptest.NewRequest("GET", "/api/v1/functions?group=Astrology", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestFunctionsHandler_Get(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), newAdapter(t))

	req := httptest.NewRequest("GET", "/api/v1/functions/macd", nil)
	req.SetPathValue("name", "macd")
	w := httptest.NewRecorder()
	handler.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeData(t, w)
	if data["name"] != "MACD" {
		t.Errorf("expected MACD, got %v", data["name"])
	}
	if data["lookback"] != float64(33) {
		t.Errorf("expected lookback 33, got %v", data["lookback"])
	}
	if len(data["outputs"].([]any)) != 3 {
		t.Errorf("expected 3 outputs, got %v", data["outputs"])
	}
}

func TestFunctionsHandler_GetUnsupportedHasNoLookback(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), newAdapter(t))

	req := httptest.NewRequest("GET", "/api/v1/functions/CDLDOJI", nil)
	req.SetPathValue("name", "CDLDOJI")
	w := httptest.NewRecorder()
	handler.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeData(t, w)
	if _, ok := data["lookback"]; ok {
		t.Error("expected no lookback for a function the backend lacks")
	}
	if data["supported"] != false {
		t.Errorf("expected supported false, got %v", data["supported"])
	}
}

func TestFunctionsHandler_GetUnknown(t *testing.T) {
	handler := NewFunctionsHandler(catalog.Default(), nil)

	req := httptest.NewRequest("GET", "/api/v1/functions/NOPE", nil)
	req.SetPathValue("name", "NOPE")
	w := httptest.NewRecorder()
	handler.Get(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if got := decodeError(t, w).Code; got != "UNKNOWN_FUNCTION" {
		t.Errorf("expected UNKNOWN_FUNCTION, got %s", got)
	}
}
