package module

import (
	"context"
	"testing"

	"maidata/internal/modkit"
	mod "maidata/internal/modkit/module"
	"maidata/internal/platform/config"
	"maidata/internal/services/sizeguard/domain"
	kit "maidata/internal/platform/testkit"
)

func TestFromConfigDefaultsAndOverrides(t *testing.T) {
	opts := FromConfig(config.New())
	if opts.MaxBytes != 200*1024*1024 {
		t.Fatalf("default MaxBytes = %d", opts.MaxBytes)
	}

	t.Setenv("CORE_SIZEGUARD_MAX_BYTES", "1024")
	t.Setenv("CORE_SIZEGUARD_SKIP_DIRS", ".git,node_modules")
	t.Setenv("CORE_SIZEGUARD_IGNORE_SUFFIXES", ".log")
	opts = FromConfig(config.New())
	if opts.MaxBytes != 1024 {
		t.Fatalf("MaxBytes = %d", opts.MaxBytes)
	}
	if len(opts.SkipDirs) != 2 || opts.SkipDirs[1] != "node_modules" {
		t.Fatalf("SkipDirs = %v", opts.SkipDirs)
	}
	if len(opts.IgnoreSuffixes) != 1 || opts.IgnoreSuffixes[0] != ".log" {
		t.Fatalf("IgnoreSuffixes = %v", opts.IgnoreSuffixes)
	}
}

func TestModuleExposesCheckerPort(t *testing.T) {
	t.Setenv("CORE_SIZEGUARD_MAX_BYTES", "2048")

	m := New(modkit.Deps{Cfg: config.New()})
	if m.Name() != "sizeguard" {
		t.Fatalf("Name = %q", m.Name())
	}

	checker := mod.MustPortsOf[domain.CheckerPort](m)

	root := t.TempDir()
	kit.WriteTree(t, root, map[string]int{"big.bin": 4096})
	rep, err := checker.Check(context.Background(), root)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.OK() {
		t.Fatalf("4096 > 2048 must fail the gate")
	}
}
