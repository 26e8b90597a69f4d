// Package domain holds the core types for the PR split pipeline
package domain

import (
	"encoding/json"

	"maidata/internal/core/diffparse"
)

// RawPR is one input record from the warehouse export
// pr_id and diff_url are mandatory; everything else is carried through
type RawPR struct {
	PRID    json.Number `json:"pr_id" validate:"required"`
	Repo    string      `json:"repo"`
	LOC     int         `json:"loc,omitempty"`
	Body    string      `json:"body,omitempty"`
	DiffURL string      `json:"diff_url" validate:"required,url"`
}

// AtomicDiff is one self-contained change carved out of a PR
type AtomicDiff struct {
	Title string `json:"title"`
	Patch string `json:"patch"`
}

// SplitPR is the output record for a successfully split PR
type SplitPR struct {
	PRID         json.Number  `json:"pr_id"`
	Repo         string       `json:"repo"`
	RunID        string       `json:"run_id"`
	OriginalDiff string       `json:"original_diff"`
	AtomicDiffs  []AtomicDiff `json:"atomic_diffs"`
}

// FileDiff re-exports the per-file diff shape used by the splitter
type FileDiff = diffparse.FileDiff

// SkipReason says why a record produced no output
type SkipReason string

// Skip reasons surfaced in logs and counted in the run summary
const (
	SkipNone     SkipReason = ""
	SkipInvalid  SkipReason = "invalid_record"
	SkipVanished SkipReason = "diff_vanished"
	SkipFetch    SkipReason = "fetch_failed"
	SkipQuality  SkipReason = "too_few_diffs"
)

// RunSummary tallies one split run over an input file
type RunSummary struct {
	RunID    string
	Read     int
	Emitted  int
	Skipped  map[SkipReason]int
	BadLines int
}

// SkippedTotal sums all skip buckets
func (s RunSummary) SkippedTotal() int {
	n := 0
	for _, v := range s.Skipped {
		n += v
	}
	return n
}
