// Package queries ships the static warehouse query presets used to pull
// merged pull-request metadata out of the public GitHub event archive.
// The presets are handed verbatim to an external analytics service; nothing
// in this module parses or executes them
package queries

import (
	_ "embed"
)

//go:embed merged_prs.sql
var mergedPRs string

//go:embed large_prs.sql
var largePRs string

// Preset is a named, ready-to-run query text
type Preset struct {
	Name string
	SQL  string
}

// MergedPRs returns the preset selecting all closed-and-merged PR events
func MergedPRs() Preset { return Preset{Name: "merged_prs", SQL: mergedPRs} }

// LargePRs returns the merged-PR preset filtered to a LOC floor with a row cap
func LargePRs() Preset { return Preset{Name: "large_prs", SQL: largePRs} }

// All lists the available presets in a stable order
func All() []Preset {
	return []Preset{MergedPRs(), LargePRs()}
}

// ByName looks a preset up by its name
func ByName(name string) (Preset, bool) {
	for _, p := range All() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
