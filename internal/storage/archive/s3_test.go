package archive

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/newthinker/tacall/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory, path-style S3 endpoint covering the calls
// S3Storage makes.
type fakeS3 struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
}

type listResult struct {
	XMLName     xml.Name `xml:"ListBucketResult"`
	Name        string   `xml:"Name"`
	Prefix      string   `xml:"Prefix"`
	KeyCount    int      `xml:"KeyCount"`
	IsTruncated bool     `xml:"IsTruncated"`
	Contents    []struct {
		Key  string `xml:"Key"`
		Size int    `xml:"Size"`
	} `xml:"Contents"`
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucketPath := "/" + f.bucket
	if !strings.HasPrefix(r.URL.Path, bucketPath) {
		http.Error(w, "no such bucket", http.StatusNotFound)
		return
	}
	key := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, bucketPath), "/")

	switch {
	case r.Method == http.MethodGet && key == "":
		f.list(w, r.URL.Query().Get("prefix"))
	case r.Method == http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		f.objects[key] = data
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		data, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Write(data)
	case r.Method == http.MethodHead:
		if _, ok := f.objects[key]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) list(w http.ResponseWriter, prefix string) {
	res := listResult{Name: f.bucket, Prefix: prefix}
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		res.Contents = append(res.Contents, struct {
			Key  string `xml:"Key"`
			Size int    `xml:"Size"`
		}{k, len(f.objects[k])})
	}
	res.KeyCount = len(keys)
	w.Header().Set("Content-Type", "application/xml")
	xml.NewEncoder(w).Encode(res)
}

func newFakeS3(t *testing.T, prefix string) (*S3Storage, *fakeS3) {
	t.Helper()
	fake := &fakeS3{bucket: "results", objects: make(map[string][]byte)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3(S3Config{
		Bucket:    "results",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
		Prefix:    prefix,
	})
	require.NoError(t, err)
	return s, fake
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(S3Config{Endpoint: "http://localhost:9000"})
	assert.True(t, errors.Is(err, core.ErrConfigMissing))
}

func TestS3Storage_Key(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{"", "results/SMA/a.json", "results/SMA/a.json"},
		{"tacall", "results/SMA/a.json", "tacall/results/SMA/a.json"},
		{"tacall/", "results/SMA/a.json", "tacall/results/SMA/a.json"},
	}

	for _, tt := range tests {
		s := &S3Storage{prefix: strings.TrimSuffix(tt.prefix, "/")}
		assert.Equal(t, tt.want, s.key(tt.path), "prefix %q", tt.prefix)
	}
}

func TestS3Storage_RoundTrip(t *testing.T) {
	s, fake := newFakeS3(t, "tacall")
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "results/SMA/a.json", []byte(`{"func":"SMA"}`), "application/json"))
	assert.Contains(t, fake.objects, "tacall/results/SMA/a.json")

	data, err := s.Get(ctx, "results/SMA/a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"func":"SMA"}`, string(data))

	exists, err := s.Exists(ctx, "results/SMA/a.json")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "results/SMA/a.json"))
	exists, err = s.Exists(ctx, "results/SMA/a.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestS3Storage_GetMissingIsNotFound(t *testing.T) {
	s, _ := newFakeS3(t, "")

	_, err := s.Get(context.Background(), "results/SMA/missing.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestS3Storage_ListIsDirectoryScoped(t *testing.T) {
	s, _ := newFakeS3(t, "tacall")
	ctx := context.Background()

	for _, p := range []string{"results/MA/b.json", "results/MA/a.json", "results/MACD/c.json"} {
		require.NoError(t, s.Put(ctx, p, []byte("{}"), ""))
	}

	paths, err := s.List(ctx, "results/MA")
	require.NoError(t, err)
	assert.Equal(t, []string{"results/MA/a.json", "results/MA/b.json"}, paths)

	paths, err = s.List(ctx, "results/NONE")
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestS3Storage_ResultStore(t *testing.T) {
	s, _ := newFakeS3(t, "")
	store := NewResultStore(s, nil)
	ctx := context.Background()

	rec := &Record{Func: "EMA", Names: []string{"real"}, Outputs: []core.Series{{1, 2}}}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Load(ctx, "ema", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Outputs, got.Outputs)

	_, err = store.Load(ctx, "EMA", "6f1c1d1e-3a52-4d55-9a53-0d2b0b4e7a10")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	assert.NoError(t, store.Close())
}
