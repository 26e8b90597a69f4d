// Package service implements the PR split pipeline
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"maidata/internal/core/diffparse"
	perr "maidata/internal/platform/errors"
	"maidata/internal/platform/logger"
	"maidata/internal/platform/ndjson"
	"maidata/internal/services/prsplit/domain"
)

// Defaults match the original curation thresholds
const (
	DefaultMaxLOC   = 500
	DefaultMaxDirs  = 3
	DefaultMinDiffs = 2
)

// Config holds split thresholds
type Config struct {
	// MaxLOC is the added-lines ceiling for keeping a directory group whole
	MaxLOC int

	// MaxDirs is the group count at which every group is split per file
	MaxDirs int

	// MinDiffs is the quality floor; PRs yielding fewer atomic diffs are dropped
	MinDiffs int
}

// Service splits raw PR records into atomic diffs
type Service struct {
	fetch domain.DiffFetcher
	cfg   Config
}

// New constructs the split service, filling config defaults
func New(fetch domain.DiffFetcher, cfg Config) *Service {
	if fetch == nil {
		panic("prsplit.Service requires a non nil DiffFetcher")
	}
	if cfg.MaxLOC <= 0 {
		cfg.MaxLOC = DefaultMaxLOC
	}
	if cfg.MaxDirs <= 0 {
		cfg.MaxDirs = DefaultMaxDirs
	}
	if cfg.MinDiffs <= 0 {
		cfg.MinDiffs = DefaultMinDiffs
	}
	return &Service{fetch: fetch, cfg: cfg}
}

// Split fetches, parses, and carves one PR into atomic diffs
func (s *Service) Split(ctx context.Context, raw domain.RawPR) (domain.SplitPR, domain.SkipReason) {
	log := logger.C(ctx)

	if err := vInit().validate.Struct(raw); err != nil {
		log.Warn().
			Str("pr_id", raw.PRID.String()).
			Str("reason", vInit().explain(err)).
			Msg("invalid pr record skipped")
		return domain.SplitPR{}, domain.SkipInvalid
	}

	log.Debug().Str("pr_id", raw.PRID.String()).Str("repo", raw.Repo).Msg("processing pr")

	diff, err := s.fetch.FetchDiff(ctx, raw.DiffURL)
	switch {
	case err == nil:
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		log.Info().Str("pr_id", raw.PRID.String()).Msg("diff vanished (repo deleted or private), skipping")
		return domain.SplitPR{}, domain.SkipVanished
	default:
		log.Error().Err(err).Str("pr_id", raw.PRID.String()).Str("diff_url", raw.DiffURL).Msg("diff fetch failed")
		return domain.SplitPR{}, domain.SkipFetch
	}

	files := diffparse.Parse(diff)
	groups := diffparse.GroupByTopDir(files)
	log.Debug().
		Str("pr_id", raw.PRID.String()).
		Int("files", len(files)).
		Int("dirs", len(groups)).
		Msg("parsed diff")

	atomic := s.carve(groups)

	if len(atomic) < s.cfg.MinDiffs {
		log.Info().
			Str("pr_id", raw.PRID.String()).
			Int("diffs", len(atomic)).
			Int("min", s.cfg.MinDiffs).
			Msg("too few atomic diffs, dropping pr")
		return domain.SplitPR{}, domain.SkipQuality
	}

	return domain.SplitPR{
		PRID:         raw.PRID,
		Repo:         raw.Repo,
		OriginalDiff: diff,
		AtomicDiffs:  atomic,
	}, domain.SkipNone
}

// carve applies the per-directory split rules
// a group stays whole only when it is small and the PR touches few directories
// directories are emitted in sorted order so repeated runs produce identical output
func (s *Service) carve(groups map[string][]domain.FileDiff) []domain.AtomicDiff {
	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var out []domain.AtomicDiff
	for _, dir := range dirs {
		files := groups[dir]
		if diffparse.GroupAdded(files) > s.cfg.MaxLOC || len(groups) >= s.cfg.MaxDirs {
			for _, f := range files {
				out = append(out, domain.AtomicDiff{
					Title: "Update " + f.Path,
					Patch: f.Patch,
				})
			}
			continue
		}
		patches := make([]string, 0, len(files))
		for _, f := range files {
			patches = append(patches, f.Patch)
		}
		out = append(out, domain.AtomicDiff{
			Title: fmt.Sprintf("Update %s directory", dir),
			Patch: strings.Join(patches, "\n"),
		})
	}
	return out
}

// RunFile splits every record of an NDJSON dump into an output NDJSON file
// The run is synchronous: one record at a time, in input order
func (s *Service) RunFile(ctx context.Context, inputPath, outputPath string) (domain.RunSummary, error) {
	sum := domain.RunSummary{
		RunID:   uuid.NewString(),
		Skipped: map[domain.SkipReason]int{},
	}
	ctx = logger.WithRun(ctx, sum.RunID)
	log := logger.C(ctx)

	in, err := os.Open(inputPath)
	if err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeIO, "prsplit: open input %s", inputPath)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close input")
		}
	}()

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return sum, perr.Wrapf(err, perr.ErrorCodeIO, "prsplit: create output dir %s", dir)
		}
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeIO, "prsplit: create output %s", outputPath)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close output")
		}
	}()

	r := ndjson.NewReader(in)
	w := ndjson.NewWriter(out)

	for {
		if cerr := ctx.Err(); cerr != nil {
			return sum, cerr
		}

		var raw domain.RawPR
		err := r.Next(&raw)
		if err == io.EOF {
			break
		}
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeJSON) {
				log.Warn().Err(err).Int("line", r.Line()).Msg("bad ndjson line skipped")
				sum.BadLines++
				continue
			}
			return sum, perr.Wrapf(err, perr.ErrorCodeIO, "prsplit: read input %s", inputPath)
		}
		sum.Read++

		rec, reason := s.Split(ctx, raw)
		if reason != domain.SkipNone {
			sum.Skipped[reason]++
			continue
		}
		rec.RunID = sum.RunID
		if err := w.Write(rec); err != nil {
			return sum, perr.Wrapf(err, perr.ErrorCodeIO, "prsplit: write output %s", outputPath)
		}
		sum.Emitted++
	}

	if err := w.Flush(); err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeIO, "prsplit: flush output %s", outputPath)
	}

	log.Info().
		Int("read", sum.Read).
		Int("emitted", sum.Emitted).
		Int("skipped", sum.SkippedTotal()).
		Int("bad_lines", sum.BadLines).
		Msg("split run complete")
	return sum, nil
}
