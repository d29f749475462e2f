package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newthinker/tacall/internal/core"
	"go.uber.org/zap"
)

const resultsRoot = "results"

// Record is one persisted indicator result.
type Record struct {
	ID        string             `json:"id"`
	Func      string             `json:"func"`
	Params    map[string]float64 `json:"params,omitempty"`
	Begin     int                `json:"begin"`
	Names     []string           `json:"names"`
	Outputs   []core.Series      `json:"outputs"`
	CreatedAt time.Time          `json:"created_at"`
}

// ResultStore persists records as JSON under results/<FUNC>/<id>.json.
type ResultStore struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewResultStore creates a ResultStore over storage.
func NewResultStore(storage Storage, logger *zap.Logger) *ResultStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultStore{storage: storage, logger: logger, now: time.Now}
}

// funcDir returns the directory holding fn's records. Names are catalog
// identifiers, so anything else is rejected before it reaches a path.
func funcDir(fn string) (string, error) {
	name := strings.ToUpper(fn)
	valid := name != "" && strings.IndexFunc(name, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_')
	}) < 0
	if !valid {
		return "", core.Errorf(core.ErrInvalidInput, "invalid function name %q", fn)
	}
	return path.Join(resultsRoot, name), nil
}

func recordPath(fn, id string) (string, error) {
	dir, err := funcDir(fn)
	if err != nil {
		return "", err
	}
	return path.Join(dir, id+".json"), nil
}

// Save assigns an ID and timestamp when missing and writes the record.
func (s *ResultStore) Save(ctx context.Context, rec *Record) error {
	if rec.Func == "" {
		return core.Errorf(core.ErrInvalidInput, "record without function")
	}
	if _, err := funcDir(rec.Func); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return core.WrapError(core.ErrArchiveFailed, fmt.Errorf("encoding record: %w", err))
	}
	p, _ := recordPath(rec.Func, rec.ID)
	if err := s.storage.Put(ctx, p, data, "application/json"); err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	s.logger.Debug("result archived", zap.String("path", p), zap.Int("bytes", len(data)))
	return nil
}

// Load reads one record.
func (s *ResultStore) Load(ctx context.Context, fn, id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.Errorf(core.ErrNotFound, "invalid record id %q", id)
	}
	p, err := recordPath(fn, id)
	if err != nil {
		return nil, err
	}
	data, err := s.storage.Get(ctx, p)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, fmt.Errorf("decoding record: %w", err))
	}
	return &rec, nil
}

// List returns the record IDs stored for fn, sorted.
func (s *ResultStore) List(ctx context.Context, fn string) ([]string, error) {
	dir, err := funcDir(fn)
	if err != nil {
		return nil, err
	}
	paths, err := s.storage.List(ctx, dir)
	if err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, err)
	}
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		if id, ok := strings.CutSuffix(path.Base(p), ".json"); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes one record.
func (s *ResultStore) Delete(ctx context.Context, fn, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.Errorf(core.ErrNotFound, "invalid record id %q", id)
	}
	p, err := recordPath(fn, id)
	if err != nil {
		return err
	}
	return s.storage.Delete(ctx, p)
}

// Close releases the storage when it holds a connection, as the SQLite
// and Redis backends do.
func (s *ResultStore) Close() error {
	if c, ok := s.storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
