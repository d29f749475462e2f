package archive

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/newthinker/tacall/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*ResultStore, *LocalFS) {
	t.Helper()
	fs, err := NewLocalFS(t.TempDir())
	require.NoError(t, err)
	store := NewResultStore(fs, nil)
	store.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return store, fs
}

func TestResultStore_SaveLoad(t *testing.T) {
	store, fs := newStore(t)
	ctx := context.Background()

	rec := &Record{
		Func:    "sma",
		Params:  map[string]float64{"timeperiod": 2},
		Begin:   1,
		Names:   []string{"real"},
		Outputs: []core.Series{{1.5, 2.5}},
	}
	require.NoError(t, store.Save(ctx, rec))
	require.NotEmpty(t, rec.ID)
	assert.Equal(t, 2024, rec.CreatedAt.Year())

	exists, err := fs.Exists(ctx, "results/SMA/"+rec.ID+".json")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.Load(ctx, "SMA", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Outputs, got.Outputs)
	assert.Equal(t, 1, got.Begin)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestResultStore_NonFiniteValues(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	rec := &Record{Func: "LN", Names: []string{"real"}, Outputs: []core.Series{{math.NaN(), 0, math.Inf(-1)}}}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Load(ctx, "LN", rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Outputs[0], 3)
	assert.True(t, math.IsNaN(got.Outputs[0][0]))
	assert.Equal(t, 0.0, got.Outputs[0][1])
	assert.True(t, math.IsInf(got.Outputs[0][2], -1))
}

func TestResultStore_List(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, &Record{Func: "EMA", Outputs: []core.Series{{float64(i)}}}))
	}
	require.NoError(t, store.Save(ctx, &Record{Func: "RSI"}))

	ids, err := store.List(ctx, "ema")
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	ids, err = store.List(ctx, "MACD")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestResultStore_LoadMissing(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	_, err := store.Load(ctx, "SMA", "3f1c2a8e-5d0b-4c55-9a43-1b2c3d4e5f60")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = store.Load(ctx, "SMA", "../../etc/passwd")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestResultStore_Delete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	rec := &Record{Func: "SMA"}
	require.NoError(t, store.Save(ctx, rec))
	require.NoError(t, store.Delete(ctx, "SMA", rec.ID))

	_, err := store.Load(ctx, "SMA", rec.ID)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestResultStore_RejectsPathLikeFunc(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &Record{Func: "SMA"}))

	for _, fn := range []string{"..", "../results", "SMA/..", ""} {
		_, err := store.List(ctx, fn)
		assert.True(t, errors.Is(err, core.ErrInvalidInput), fn)
	}
	err := store.Save(ctx, &Record{Func: "../SMA"})
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestResultStore_Close(t *testing.T) {
	store, _ := newStore(t)
	assert.NoError(t, store.Close())

	db, err := NewSQLite(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	sqlStore := NewResultStore(db, nil)
	require.NoError(t, sqlStore.Save(context.Background(), &Record{Func: "SMA"}))
	require.NoError(t, sqlStore.Close())

	err = sqlStore.Save(context.Background(), &Record{Func: "SMA"})
	assert.True(t, errors.Is(err, core.ErrArchiveFailed))
}

func TestResultStore_RequiresFunc(t *testing.T) {
	store, _ := newStore(t)
	err := store.Save(context.Background(), &Record{})
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}
