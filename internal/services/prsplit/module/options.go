package module

import (
	"time"

	"maidata/internal/platform/config"
	"maidata/internal/services/prsplit/service"
)

// Options holds configuration options for the PR split pipeline
type Options struct {
	MaxLOC   int
	MaxDirs  int
	MinDiffs int

	CacheDir      string
	CacheMaxAge   time.Duration
	CacheMaxBytes int64

	// GitHub client
	TokensCSV  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads the split options from config
// thresholds live under CORE_PRSPLIT_, client tuning under CORE_GITHUB_
// GITHUB_TOKEN is honored as the conventional fallback for a single token
func FromConfig(cfg config.Conf) Options {
	ps := cfg.Prefix("CORE_PRSPLIT_")
	gh := cfg.Prefix("CORE_GITHUB_")
	return Options{
		MaxLOC:   ps.MayInt("MAX_LOC", service.DefaultMaxLOC),
		MaxDirs:  ps.MayInt("MAX_DIRS", service.DefaultMaxDirs),
		MinDiffs: ps.MayInt("MIN_DIFFS", service.DefaultMinDiffs),

		CacheDir:      ps.MayString("CACHE_DIR", ".cache/diffs"),
		CacheMaxAge:   ps.MayDuration("CACHE_MAX_AGE", 0),
		CacheMaxBytes: ps.MayInt64("CACHE_MAX_BYTES", 0),

		TokensCSV:  gh.MayString("TOKENS", cfg.MayString("GITHUB_TOKEN", "")),
		Timeout:    gh.MayDuration("TIMEOUT", 30*time.Second),
		MaxRetries: gh.MayInt("RETRIES", 3),
		RetryBase:  gh.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}
