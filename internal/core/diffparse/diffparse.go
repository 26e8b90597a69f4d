// Package diffparse splits a unified git diff into per-file patches and
// groups them for atomic-diff emission.
// A file section starts at a "diff --git a/... b/..." header and runs until
// the next header or end of input
package diffparse

import (
	"strings"
)

// FileDiff is one file's slice of a PR diff
type FileDiff struct {
	Path  string `json:"path"`
	Patch string `json:"patch"`
}

const headerPrefix = "diff --git"

// Parse splits a unified diff into per-file changes.
// The path is taken from the b/ side of the header so renames map to their destination
func Parse(diff string) []FileDiff {
	var (
		files   []FileDiff
		current string
		patch   []string
	)

	flush := func() {
		if current != "" && len(patch) > 0 {
			files = append(files, FileDiff{Path: current, Patch: strings.Join(patch, "\n")})
		}
	}

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, headerPrefix) {
			flush()
			current = pathFromHeader(line)
			patch = []string{line}
			continue
		}
		if current != "" {
			patch = append(patch, line)
		}
	}
	flush()

	return files
}

// pathFromHeader extracts the b/ path from a "diff --git a/x b/x" line
func pathFromHeader(line string) string {
	if i := strings.LastIndex(line, " b/"); i >= 0 {
		return line[i+len(" b/"):]
	}
	return strings.TrimSpace(strings.TrimPrefix(line, headerPrefix))
}

// AddedLines counts added lines of code in a patch
// "+" lines count, "+++" file headers do not
func AddedLines(patch string) int {
	n := 0
	for _, line := range strings.Split(patch, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			n++
		}
	}
	return n
}

// GroupByTopDir buckets files by their top-level directory segment
// Files that live at the repository root (no directory) are not grouped
func GroupByTopDir(files []FileDiff) map[string][]FileDiff {
	groups := make(map[string][]FileDiff)
	for _, f := range files {
		top, rest, ok := strings.Cut(f.Path, "/")
		if !ok || rest == "" {
			continue
		}
		groups[top] = append(groups[top], f)
	}
	return groups
}

// GroupAdded sums added lines across a directory group
func GroupAdded(group []FileDiff) int {
	total := 0
	for _, f := range group {
		total += AddedLines(f.Patch)
	}
	return total
}
