// Package module provides the prsplit module implementation
package module

import (
	"maidata/internal/adapters/diff/github"
	"maidata/internal/modkit"
	"maidata/internal/services/prsplit/domain"
	"maidata/internal/services/prsplit/service"
)

// Ports defines the prsplit module ports
type Ports struct {
	Runner   domain.RunnerPort
	Splitter domain.SplitterPort
}

// Module implements the prsplit module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the prsplit module
// It wires the cached GitHub diff fetcher and the split service
// using CORE_PRSPLIT_* and CORE_GITHUB_* config from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)

	cache := github.NewDiffCache(o.CacheDir, github.WithRetention(o.CacheMaxAge, o.CacheMaxBytes))
	client := github.NewClient(github.Options{
		TokensCSV:  o.TokensCSV,
		Timeout:    o.Timeout,
		MaxRetries: o.MaxRetries,
		RetryBase:  o.RetryBase,
	})
	fetch := github.NewCachedFetcher(cache, client)

	svc := service.New(fetch, service.Config{
		MaxLOC:   o.MaxLOC,
		MaxDirs:  o.MaxDirs,
		MinDiffs: o.MinDiffs,
	})

	// a caller-supplied fetcher port (tests) overrides the wired one
	b := modkit.Build(opts...)
	if f, ok := b.Ports.(domain.DiffFetcher); ok && f != nil {
		svc = service.New(f, service.Config{
			MaxLOC:   o.MaxLOC,
			MaxDirs:  o.MaxDirs,
			MinDiffs: o.MinDiffs,
		})
	}

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc, Splitter: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "prsplit" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
