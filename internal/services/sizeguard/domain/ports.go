package domain

import "context"

// CheckerPort is the public port exposed by the sizeguard module
// The scan never aborts on per-file faults; the error covers an unusable root only
type CheckerPort interface {
	Check(ctx context.Context, root string) (Report, error)
}
