package domain

import "context"

// DiffFetcher retrieves the unified diff for a PR by its diff URL
type DiffFetcher interface {
	FetchDiff(ctx context.Context, diffURL string) (string, error)
}

// SplitterPort splits a single raw PR into atomic diffs
// reason is SkipNone exactly when out is valid
type SplitterPort interface {
	Split(ctx context.Context, raw RawPR) (out SplitPR, reason SkipReason)
}

// RunnerPort is the public port exposed by the module: split a whole NDJSON dump
type RunnerPort interface {
	RunFile(ctx context.Context, inputPath, outputPath string) (RunSummary, error)
}
