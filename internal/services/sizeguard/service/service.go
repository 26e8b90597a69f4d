// Package service implements the repository size guard scan
package service

import (
	"context"
	"io/fs"
	"path/filepath"

	perr "maidata/internal/platform/errors"
	"maidata/internal/platform/logger"
	pstrings "maidata/internal/platform/strings"
	"maidata/internal/services/sizeguard/domain"
)

// DefaultMaxBytes is the per-file ceiling used when none is configured (200 MB)
const DefaultMaxBytes = 200 * 1024 * 1024

var (
	defaultSkipDirs       = []string{".git", ".hg", ".svn"}
	defaultIgnoreSuffixes = []string{".md", ".txt"}
)

// Config holds scan settings
type Config struct {
	// MaxBytes is the per-file limit; a file is oversized when strictly larger
	MaxBytes int64

	// SkipDirs are directory names pruned from the walk (version-control metadata)
	SkipDirs []string

	// IgnoreSuffixes are filename suffixes exempt from the limit
	IgnoreSuffixes []string
}

// Service walks a tree and reports files over the byte limit
// A single synchronous walk per invocation; the filesystem is only read
type Service struct {
	cfg  Config
	skip map[string]struct{}
	log  logger.Logger
}

// New constructs the size guard service, filling config defaults
func New(cfg Config) *Service {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	cfg.SkipDirs = pstrings.IfEmpty(cfg.SkipDirs, defaultSkipDirs)
	cfg.IgnoreSuffixes = pstrings.IfEmpty(cfg.IgnoreSuffixes, defaultIgnoreSuffixes)

	skip := make(map[string]struct{}, len(cfg.SkipDirs))
	for _, d := range cfg.SkipDirs {
		skip[d] = struct{}{}
	}
	return &Service{cfg: cfg, skip: skip, log: *logger.Named("sizeguard")}
}

// Check scans root and reports every regular file whose size exceeds the limit.
// Unreadable entries are logged and skipped; partial success beats a dead CI gate.
// The returned error is non-nil only when root itself is unusable
func (s *Service) Check(ctx context.Context, root string) (domain.Report, error) {
	rep := domain.Report{Root: root, MaxBytes: s.cfg.MaxBytes}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.log.Warn().Err(walkErr).Str("path", path).Msg("unreadable entry skipped")
			rep.Skipped++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, ok := s.skip[d.Name()]; ok && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if pstrings.HasAnySuffix(d.Name(), s.cfg.IgnoreSuffixes) {
			return nil
		}

		info, ierr := d.Info()
		if ierr != nil {
			// broken symlink or racing delete; keep scanning
			s.log.Warn().Err(ierr).Str("path", path).Msg("stat failed, entry skipped")
			rep.Skipped++
			return nil
		}

		rep.Scanned++
		rep.Bytes += info.Size()

		if info.Size() > s.cfg.MaxBytes {
			rel, rerr := filepath.Rel(root, path)
			if rerr != nil {
				rel = path
			}
			off := domain.OversizedFile{Path: rel, Bytes: info.Size()}
			rep.Oversized = append(rep.Oversized, off)
			s.log.Warn().
				Str("path", rel).
				Int64("bytes", info.Size()).
				Int64("max_bytes", s.cfg.MaxBytes).
				Msg("file exceeds size limit")
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return rep, err
		}
		return rep, perr.Wrapf(err, perr.ErrorCodeIO, "sizeguard: cannot scan root %s", root)
	}

	if rep.OK() {
		s.log.Info().
			Str("root", root).
			Int("files", rep.Scanned).
			Int64("bytes", rep.Bytes).
			Msg("all files within size limit")
	}
	return rep, nil
}
