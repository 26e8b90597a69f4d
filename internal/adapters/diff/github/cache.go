package github

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"maidata/internal/platform/logger"
)

// DiffCache stores fetched diffs on disk, one file per URL keyed by sha256.
// Optional retention by max age and total bytes
type DiffCache struct {
	dir             string
	retainMaxAge    time.Duration
	retainMaxBytes  int64
	lastCleanupUnix atomic.Int64
}

// CacheOption configures the cache
type CacheOption func(*DiffCache)

// WithRetention sets optional age and size retention
// Pass zero to disable either dimension
func WithRetention(maxAge time.Duration, maxBytes int64) CacheOption {
	return func(c *DiffCache) {
		c.retainMaxAge = maxAge
		c.retainMaxBytes = maxBytes
	}
}

// NewDiffCache builds a cache rooted at dir; the dir is created if missing
func NewDiffCache(dir string, opts ...CacheOption) *DiffCache {
	_ = os.MkdirAll(dir, 0o755)
	c := &DiffCache{dir: dir}
	for _, o := range opts {
		o(c)
	}
	return c
}

// key hashes a URL into a stable cache filename
func (c *DiffCache) key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]) + ".diff"
}

// Get returns a cached diff and whether it was present
func (c *DiffCache) Get(url string) (string, bool) {
	b, err := os.ReadFile(filepath.Join(c.dir, c.key(url)))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Put stores a diff atomically via a .part rename
func (c *DiffCache) Put(url, content string) error {
	path := filepath.Join(c.dir, c.key(url))
	tmp := path + ".part"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	c.maybeCleanup()
	return nil
}

// maybeCleanup throttles retention cleanup to once per ten minutes
func (c *DiffCache) maybeCleanup() {
	now := time.Now().Unix()
	last := c.lastCleanupUnix.Load()
	if last != 0 && now-last < 600 {
		return
	}
	if c.retainMaxAge <= 0 && c.retainMaxBytes <= 0 {
		return
	}
	if !c.lastCleanupUnix.CompareAndSwap(last, now) {
		return
	}
	_ = c.cleanupOnce()
}

// cleanupOnce applies age and size retention, oldest entries first
func (c *DiffCache) cleanupOnce() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	type item struct {
		Path    string
		Size    int64
		ModTime time.Time
	}
	var items []item
	var total int64
	cutoff := time.Now().Add(-c.retainMaxAge)

	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".diff") {
			continue
		}
		full := filepath.Join(c.dir, name)
		fi, err := os.Stat(full)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if c.retainMaxAge > 0 && fi.ModTime().Before(cutoff) {
			_ = os.Remove(full)
			continue
		}
		items = append(items, item{Path: full, Size: fi.Size(), ModTime: fi.ModTime()})
		total += fi.Size()
	}

	if c.retainMaxBytes > 0 && total > c.retainMaxBytes {
		sort.Slice(items, func(i, j int) bool { return items[i].ModTime.Before(items[j].ModTime) })
		for _, it := range items {
			if total <= c.retainMaxBytes {
				break
			}
			_ = os.Remove(it.Path)
			total -= it.Size
		}
	}
	return nil
}

// CachedFetcher serves diffs from the cache and falls back to the client
type CachedFetcher struct {
	cache  *DiffCache
	client *Client
	log    logger.Logger
}

// NewCachedFetcher composes a DiffCache in front of a Client
func NewCachedFetcher(cache *DiffCache, client *Client) *CachedFetcher {
	return &CachedFetcher{cache: cache, client: client, log: *logger.Named("diffcache")}
}

// FetchDiff returns the cached diff when present, otherwise fetches and stores it
func (f *CachedFetcher) FetchDiff(ctx context.Context, diffURL string) (string, error) {
	if diff, ok := f.cache.Get(diffURL); ok {
		f.log.Debug().Str("url", diffURL).Msg("diff cache hit")
		return diff, nil
	}
	diff, err := f.client.FetchDiff(ctx, diffURL)
	if err != nil {
		return "", err
	}
	if err := f.cache.Put(diffURL, diff); err != nil {
		// cache write failure is not fatal to the fetch
		f.log.Warn().Err(err).Str("url", diffURL).Msg("diff cache write failed")
	}
	return diff, nil
}
