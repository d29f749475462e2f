// internal/api/job/store_test.go
package job

import (
	"errors"
	"testing"
	"time"

	"github.com/newthinker/tacall/internal/core"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(100, time.Hour)

	job := store.Create("batch", 3)
	if job.ID == "" {
		t.Error("expected job ID")
	}
	if job.Status != StatusPending {
		t.Errorf("expected pending, got %s", job.Status)
	}

	retrieved, err := store.Get(job.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if retrieved.ID != job.ID {
		t.Error("IDs don't match")
	}
	if retrieved.Total != 3 {
		t.Errorf("expected total 3, got %d", retrieved.Total)
	}
}

func TestStore_Update(t *testing.T) {
	store := NewStore(100, time.Hour)
	job := store.Create("batch", 1)

	err := store.Update(job.ID, func(j *Job) {
		j.Status = StatusRunning
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := store.Get(job.ID)
	if retrieved.Status != StatusRunning {
		t.Errorf("expected running, got %s", retrieved.Status)
	}
	if retrieved.Done() {
		t.Error("running job should not be done")
	}
}

func TestStore_MaxSize(t *testing.T) {
	store := NewStore(2, time.Hour)

	job1 := store.Create("batch", 1)
	store.Create("batch", 1)
	store.Create("batch", 1) // Should evict job1

	_, err := store.Get(job1.ID)
	if err == nil {
		t.Error("expected job1 to be evicted")
	}
}

func TestStore_NotFound(t *testing.T) {
	store := NewStore(100, time.Hour)

	_, err := store.Get("nonexistent")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if err := store.Update("nonexistent", func(*Job) {}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected NOT_FOUND from Update, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	store := NewStore(100, time.Hour)
	first := store.Create("batch", 1)
	store.Create("batch", 2)

	jobs := store.List()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != first.ID {
		t.Error("expected insertion order")
	}
}

func TestStore_ExpiresFinishedJobs(t *testing.T) {
	store := NewStore(100, time.Minute)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	done := store.Create("batch", 1)
	store.Update(done.ID, func(j *Job) { j.Status = StatusComplete })
	pending := store.Create("batch", 1)

	clock = clock.Add(2 * time.Minute)
	store.Create("batch", 1)

	if _, err := store.Get(done.ID); err == nil {
		t.Error("expected finished job to expire")
	}
	if _, err := store.Get(pending.ID); err != nil {
		t.Errorf("pending job should survive expiry: %v", err)
	}
}
