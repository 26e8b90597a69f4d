package module

import (
	"maidata/internal/platform/config"
	"maidata/internal/services/sizeguard/service"
)

// Options holds configuration options for the size guard
type Options struct {
	MaxBytes       int64
	SkipDirs       []string
	IgnoreSuffixes []string
}

// FromConfig reads the size guard options from config with CORE_SIZEGUARD_ prefix
func FromConfig(cfg config.Conf) Options {
	sg := cfg.Prefix("CORE_SIZEGUARD_")
	return Options{
		MaxBytes:       sg.MayInt64("MAX_BYTES", service.DefaultMaxBytes),
		SkipDirs:       sg.MayCSV("SKIP_DIRS", nil),
		IgnoreSuffixes: sg.MayCSV("IGNORE_SUFFIXES", nil),
	}
}
