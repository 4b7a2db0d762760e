package data

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL is how long a cached resource stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// CachedSource wraps a Source with an expiring on-disk cache. The cache is
// opt-in: a default build skips it and fetches every resource on every run.
type CachedSource struct {
	src       Source
	dir       string
	ttl       time.Duration
	skipCache bool // forces fresh fetches without touching the cache dir
}

// CachedSourceConfig holds configuration for the cached source.
type CachedSourceConfig struct {
	Dir       string
	TTL       time.Duration
	SkipCache bool
}

// NewCachedSource creates a caching wrapper around src.
func NewCachedSource(src Source, config *CachedSourceConfig) *CachedSource {
	if config == nil {
		config = &CachedSourceConfig{}
	}
	ttl := config.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		src:       src,
		dir:       config.Dir,
		ttl:       ttl,
		skipCache: config.SkipCache,
	}
}

// cacheMeta is the sidecar record written next to each cached body.
type cacheMeta struct {
	ID        uuid.UUID `json:"id"`
	Resource  string    `json:"resource"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Get returns the cached body if present and within TTL, otherwise fetches
// fresh content and caches it. A cache write failure is not an error; the
// fetch succeeded.
func (c *CachedSource) Get(ctx context.Context, id string) ([]byte, error) {
	if !c.skipCache && c.dir != "" {
		if body, ok := c.readFresh(id); ok {
			return body, nil
		}
	}

	body, err := c.src.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !c.skipCache && c.dir != "" {
		_ = c.write(id, body)
	}
	return body, nil
}

// Invalidate removes the cached entry for a resource, forcing a re-fetch on
// the next Get.
func (c *CachedSource) Invalidate(id string) error {
	if c.dir == "" {
		return nil
	}
	if err := os.Remove(c.bodyPath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(c.metaPath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c *CachedSource) bodyPath(id string) string {
	return filepath.Join(c.dir, resourceFile(id))
}

func (c *CachedSource) metaPath(id string) string {
	return filepath.Join(c.dir, resourceKey(id)+".meta.json")
}

// readFresh returns the cached body when the sidecar metadata exists and
// the entry is within TTL.
func (c *CachedSource) readFresh(id string) ([]byte, bool) {
	metaBytes, err := os.ReadFile(c.metaPath(id))
	if err != nil {
		return nil, false
	}
	var meta cacheMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, false
	}
	if time.Since(meta.FetchedAt) > c.ttl {
		return nil, false
	}

	body, err := os.ReadFile(c.bodyPath(id))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *CachedSource) write(id string, body []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	meta := cacheMeta{
		ID:        uuid.New(),
		Resource:  resourceKey(id),
		FetchedAt: time.Now(),
	}
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.bodyPath(id), body, 0o644); err != nil {
		return err
	}
	return os.WriteFile(c.metaPath(id), metaBytes, 0o644)
}
