// internal/api/handler/api/results.go
package api

import (
	"context"
	"net/http"

	"github.com/newthinker/tacall/internal/api/response"
	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/storage/archive"
)

// ResultReader reads archived results.
type ResultReader interface {
	Load(ctx context.Context, fn, id string) (*archive.Record, error)
	List(ctx context.Context, fn string) ([]string, error)
}

// ResultsHandler serves archived results.
type ResultsHandler struct {
	results ResultReader
	catalog *catalog.Catalog
}

// NewResultsHandler creates a new results handler. Only functions of cat
// can be queried.
func NewResultsHandler(results ResultReader, cat *catalog.Catalog) *ResultsHandler {
	return &ResultsHandler{results: results, catalog: cat}
}

// List returns the archived record IDs of one function.
func (h *ResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	fn, err := h.catalog.Lookup(r.PathValue("func"))
	if err != nil {
		response.Fail(w, err)
		return
	}
	ids, err := h.results.List(r.Context(), fn.Name)
	if err != nil {
		response.Fail(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"func":  fn.Name,
		"ids":   ids,
		"count": len(ids),
	})
}

// Get returns one archived record.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	fn, err := h.catalog.Lookup(r.PathValue("func"))
	if err != nil {
		response.Fail(w, err)
		return
	}
	rec, err := h.results.Load(r.Context(), fn.Name, r.PathValue("id"))
	if err != nil {
		response.Fail(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}
