// internal/api/handler/api/functions.go
package api

import (
	"net/http"
	"strconv"

	"github.com/newthinker/tacall/internal/api/response"
	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/core"
)

// Backend reports what the active computation backend can do.
// *ta.Adapter implements it.
type Backend interface {
	Supports(name string) bool
	Lookback(name string, params ...float64) (int, error)
}

// FunctionSummary is one row of the function listing.
type FunctionSummary struct {
	Name      string `json:"name"`
	Group     string `json:"group"`
	Hint      string `json:"hint"`
	Supported bool   `json:"supported"`
}

// FunctionDetail is a catalog entry plus its lookback at default params.
// Lookback is omitted when the backend does not implement the function.
type FunctionDetail struct {
	*catalog.Function
	Supported bool `json:"supported"`
	Lookback  *int `json:"lookback,omitempty"`
}

// FunctionsHandler serves the function catalog.
type FunctionsHandler struct {
	catalog *catalog.Catalog
	backend Backend
}

// NewFunctionsHandler creates a new functions handler. With a nil backend
// every function is reported as supported.
func NewFunctionsHandler(cat *catalog.Catalog, backend Backend) *FunctionsHandler {
	return &FunctionsHandler{catalog: cat, backend: backend}
}

func (h *FunctionsHandler) supports(name string) bool {
	return h.backend == nil || h.backend.Supports(name)
}

// List returns every function, or those of ?group= only. With
// ?supported=true it leaves out what the backend cannot compute.
func (h *FunctionsHandler) List(w http.ResponseWriter, r *http.Request) {
	funcs := h.catalog.All()
	if group := r.URL.Query().Get("group"); group != "" {
		funcs = h.catalog.ByGroup(group)
		if len(funcs) == 0 {
			response.Fail(w, core.Errorf(core.ErrNotFound, "group %q", group))
			return
		}
	}

	onlySupported, _ := strconv.ParseBool(r.URL.Query().Get("supported"))

	items := make([]FunctionSummary, 0, len(funcs))
	for _, fn := range funcs {
		supported := h.supports(fn.Name)
		if onlySupported && !supported {
			continue
		}
		items = append(items, FunctionSummary{Name: fn.Name, Group: fn.Group, Hint: fn.Hint, Supported: supported})
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"functions": items,
		"count":     len(items),
		"groups":    h.catalog.Groups(),
	})
}

// Get returns one function's full description.
func (h *FunctionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	fn, err := h.catalog.Lookup(r.PathValue("name"))
	if err != nil {
		response.Fail(w, err)
		return
	}

	detail := FunctionDetail{Function: fn, Supported: h.supports(fn.Name)}
	if h.backend != nil && detail.Supported {
		if n, err := h.backend.Lookback(fn.Name); err == nil {
			detail.Lookback = &n
		}
	}
	response.JSON(w, http.StatusOK, detail)
}
