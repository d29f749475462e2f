package ta

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one call of a Batch, with inputs and params keyed by their
// catalog names.
type Job struct {
	Func   string               `json:"func" validate:"required"`
	Inputs map[string][]float64 `json:"inputs" validate:"required,min=1"`
	Params map[string]float64   `json:"params,omitempty"`
}

// Batch runs jobs concurrently, at most WithWorkers at a time, and returns
// the results in job order. The first failure cancels the jobs not yet
// started and is returned.
func (a *Adapter) Batch(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				a.recorder.RecordBatchJob("canceled")
				return err
			}
			res, err := a.CallNamed(job.Func, job.Inputs, job.Params)
			if err != nil {
				a.recorder.RecordBatchJob("error")
				return fmt.Errorf("job %d (%s): %w", i, job.Func, err)
			}
			a.recorder.RecordBatchJob("ok")
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
