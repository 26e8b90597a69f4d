// Package module provides the sizeguard module implementation
package module

import (
	"maidata/internal/modkit"
	"maidata/internal/services/sizeguard/domain"
	"maidata/internal/services/sizeguard/service"
)

// Ports defines the sizeguard module ports
type Ports struct {
	Checker domain.CheckerPort
}

// Module implements the sizeguard module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the sizeguard module, wiring the scan service
// using CORE_SIZEGUARD_* config from deps.Cfg
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(service.Config{
		MaxBytes:       opts.MaxBytes,
		SkipDirs:       opts.SkipDirs,
		IgnoreSuffixes: opts.IgnoreSuffixes,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Checker: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "sizeguard" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
