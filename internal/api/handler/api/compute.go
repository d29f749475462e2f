// internal/api/handler/api/compute.go
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/newthinker/tacall/internal/api/job"
	"github.com/newthinker/tacall/internal/api/response"
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/storage/archive"
	"github.com/newthinker/tacall/internal/ta"
	"go.uber.org/zap"
)

const batchTimeout = 5 * time.Minute

// Engine computes indicator functions.
type Engine interface {
	CallNamed(name string, inputs map[string][]float64, params map[string]float64) (*ta.Result, error)
	Batch(ctx context.Context, jobs []ta.Job) ([]*ta.Result, error)
}

// Archive persists computed results.
type Archive interface {
	Save(ctx context.Context, rec *archive.Record) error
}

// ComputeRequest is the request body of a single computation.
type ComputeRequest struct {
	Inputs  map[string][]float64 `json:"inputs" validate:"required,min=1"`
	Params  map[string]float64   `json:"params,omitempty"`
	Archive bool                 `json:"archive,omitempty"`
}

// ComputeResponse is a result plus the archive ID when it was stored.
type ComputeResponse struct {
	*ta.Result
	ID string `json:"id,omitempty"`
}

// BatchRequest is the request body of a batch computation.
type BatchRequest struct {
	Jobs []ta.Job `json:"jobs" validate:"required,min=1,max=1024,dive"`
}

// ComputeHandler handles computation requests.
type ComputeHandler struct {
	engine  Engine
	archive Archive
	jobs    *job.Store
	logger  *zap.Logger
}

// NewComputeHandler creates a new compute handler. archive and jobs may
// be nil, which disables archiving and async batches.
func NewComputeHandler(engine Engine, archive Archive, jobs *job.Store, logger *zap.Logger) *ComputeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComputeHandler{engine: engine, archive: archive, jobs: jobs, logger: logger}
}

// Compute runs one function over the request inputs.
func (h *ComputeHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := decode(r, &req); err != nil {
		response.Fail(w, err)
		return
	}
	if req.Archive && h.archive == nil {
		response.Fail(w, core.Errorf(core.ErrInvalidInput, "result archive is disabled"))
		return
	}

	res, err := h.engine.CallNamed(r.PathValue("name"), req.Inputs, req.Params)
	if err != nil {
		response.Fail(w, err)
		return
	}

	resp := ComputeResponse{Result: res}
	if req.Archive {
		rec := &archive.Record{
			Func:    res.Func,
			Params:  req.Params,
			Begin:   res.Begin,
			Names:   res.Names,
			Outputs: res.Outputs,
		}
		if err := h.archive.Save(r.Context(), rec); err != nil {
			h.logger.Error("archiving result", zap.String("function", res.Func), zap.Error(err))
			response.Fail(w, err)
			return
		}
		resp.ID = rec.ID
	}

	response.JSON(w, http.StatusOK, resp)
}

// Batch runs several computations. With ?async=true it answers 202 with
// a job ID to poll instead of waiting.
func (h *ComputeHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decode(r, &req); err != nil {
		response.Fail(w, err)
		return
	}

	async, _ := strconv.ParseBool(r.URL.Query().Get("async"))
	if async {
		if h.jobs == nil {
			response.Fail(w, core.Errorf(core.ErrInvalidInput, "async batches are disabled"))
			return
		}
		j := h.jobs.Create("batch", len(req.Jobs))
		go h.runBatch(j.ID, req.Jobs)

		response.JSON(w, http.StatusAccepted, map[string]any{
			"job_id": j.ID,
			"status": j.Status,
		})
		return
	}

	results, err := h.engine.Batch(r.Context(), req.Jobs)
	if err != nil {
		response.Fail(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"results": results})
}

// runBatch executes an async batch and updates the job status.
func (h *ComputeHandler) runBatch(jobID string, jobs []ta.Job) {
	h.jobs.Update(jobID, func(j *job.Job) {
		j.Status = job.StatusRunning
	})

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()
	results, err := h.engine.Batch(ctx, jobs)

	if err != nil {
		h.logger.Warn("async batch failed", zap.String("job_id", jobID), zap.Error(err))
		h.jobs.Update(jobID, func(j *job.Job) {
			j.Status = job.StatusFailed
			j.Error = asCoreError(err)
		})
		return
	}

	h.jobs.Update(jobID, func(j *job.Job) {
		j.Status = job.StatusComplete
		j.Result = results
	})
}

// JobStatus returns the status of an async batch.
func (h *ComputeHandler) JobStatus(w http.ResponseWriter, r *http.Request) {
	if h.jobs == nil {
		response.Fail(w, core.Errorf(core.ErrNotFound, "async batches are disabled"))
		return
	}
	j, err := h.jobs.Get(r.PathValue("id"))
	if err != nil {
		response.Fail(w, err)
		return
	}

	resp := map[string]any{
		"job_id": j.ID,
		"status": j.Status,
		"total":  j.Total,
	}
	if j.Status == job.StatusComplete {
		resp["results"] = j.Result
	}
	if j.Status == job.StatusFailed && j.Error != nil {
		detail := map[string]string{
			"code":    j.Error.Code,
			"message": j.Error.Message,
		}
		if j.Error.Cause != nil {
			detail["cause"] = j.Error.Cause.Error()
		}
		resp["error"] = detail
	}

	response.JSON(w, http.StatusOK, resp)
}

// asCoreError keeps the code of the first core error in err's chain and
// the full message as cause.
func asCoreError(err error) *core.Error {
	var ce *core.Error
	if errors.As(err, &ce) {
		return core.WrapError(ce, err)
	}
	return core.WrapError(core.ErrComputationFailed, err)
}
