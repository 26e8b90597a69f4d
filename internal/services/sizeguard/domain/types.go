// Package domain holds the core types for the repository size guard
package domain

// OversizedFile is one offender found during a scan
// Path is relative to the scan root
type OversizedFile struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// MB returns the size in megabytes for human-readable report lines
func (f OversizedFile) MB() float64 { return float64(f.Bytes) / (1024 * 1024) }

// Report is the outcome of a single scan
// Produced while scanning, discarded after the run; nothing is persisted
type Report struct {
	Root      string
	MaxBytes  int64
	Oversized []OversizedFile
	Scanned   int
	Skipped   int
	Bytes     int64
}

// OK reports whether every scanned file is within the limit
func (r Report) OK() bool { return len(r.Oversized) == 0 }
