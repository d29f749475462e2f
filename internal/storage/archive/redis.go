// internal/storage/archive/redis.go
package archive

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	goredis "github.com/go-redis/redis/v8"
	"github.com/newthinker/tacall/internal/core"
)

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Redis implements Storage with one hash per object holding its data
// and content type.
type Redis struct {
	rdb    *goredis.Client
	prefix string
}

// NewRedis creates a Redis storage client. The connection is checked
// lazily by the first command.
func NewRedis(cfg RedisConfig) *Redis {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{rdb: rdb, prefix: strings.TrimSuffix(cfg.Prefix, "/")}
}

func (r *Redis) key(path string) string {
	if r.prefix == "" {
		return path
	}
	return r.prefix + "/" + path
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if err := r.rdb.HSet(ctx, r.key(path), "data", data, "content_type", contentType).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := r.rdb.HGet(ctx, r.key(path), "data").Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, core.Errorf(core.ErrNotFound, "%s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// List scans for prefix itself and every path below it, sorted.
func (r *Redis) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSuffix(prefix, "/")
	pattern := "*"
	if prefix != "" {
		pattern = escapeGlob(r.key(prefix)) + "*"
	}

	strip := ""
	if r.prefix != "" {
		strip = r.prefix + "/"
	}

	paths := []string{}
	iter := r.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		p := strings.TrimPrefix(iter.Val(), strip)
		if prefix == "" || p == prefix || strings.HasPrefix(p, prefix+"/") {
			paths = append(paths, p)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", prefix, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (r *Redis) Delete(ctx context.Context, path string) error {
	n, err := r.rdb.Del(ctx, r.key(path)).Result()
	if err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	if n == 0 {
		return core.Errorf(core.ErrNotFound, "%s", path)
	}
	return nil
}

func (r *Redis) Exists(ctx context.Context, path string) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.key(path)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
