package module

import (
	"context"
	"testing"

	"maidata/internal/modkit"
	mod "maidata/internal/modkit/module"
	"maidata/internal/platform/config"
	"maidata/internal/services/prsplit/domain"
)

type stubFetcher struct{ diff string }

func (s stubFetcher) FetchDiff(context.Context, string) (string, error) { return s.diff, nil }

func TestFromConfigDefaults(t *testing.T) {
	o := FromConfig(config.New())
	if o.MaxLOC != 500 || o.MaxDirs != 3 || o.MinDiffs != 2 {
		t.Fatalf("threshold defaults = %+v", o)
	}
	if o.CacheDir != ".cache/diffs" {
		t.Fatalf("CacheDir = %q", o.CacheDir)
	}
}

func TestFromConfigTokenFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_fallback")
	o := FromConfig(config.New())
	if o.TokensCSV != "ghp_fallback" {
		t.Fatalf("TokensCSV = %q", o.TokensCSV)
	}

	t.Setenv("CORE_GITHUB_TOKENS", "t1,t2")
	o = FromConfig(config.New())
	if o.TokensCSV != "t1,t2" {
		t.Fatalf("explicit tokens must win: %q", o.TokensCSV)
	}
}

func TestModuleExposesPorts(t *testing.T) {
	t.Setenv("CORE_PRSPLIT_CACHE_DIR", t.TempDir())

	diff := "diff --git a/a/x.go b/a/x.go\n+++ b/a/x.go\n+1\n" +
		"diff --git a/b/y.go b/b/y.go\n+++ b/b/y.go\n+2\n"
	m := New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(domain.DiffFetcher(stubFetcher{diff: diff})))

	if m.Name() != "prsplit" {
		t.Fatalf("Name = %q", m.Name())
	}
	splitter := mod.MustPortsOf[domain.SplitterPort](m)
	out, reason := splitter.Split(context.Background(), domain.RawPR{
		PRID:    "1",
		Repo:    "o/r",
		DiffURL: "https://github.com/o/r/pull/1.diff",
	})
	if reason != domain.SkipNone || len(out.AtomicDiffs) != 2 {
		t.Fatalf("split via module ports: reason=%q diffs=%d", reason, len(out.AtomicDiffs))
	}

	if _, ok := mod.PortsOf[domain.RunnerPort](m); !ok {
		t.Fatalf("runner port missing")
	}
}
