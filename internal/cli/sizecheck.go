package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"maidata/internal/modkit"
	mod "maidata/internal/modkit/module"
	perr "maidata/internal/platform/errors"
	"maidata/internal/services/sizeguard/domain"
	sizemod "maidata/internal/services/sizeguard/module"
	"maidata/internal/services/sizeguard/service"
)

// sizecheckCommand scans a directory tree and fails when any file
// exceeds the size limit. Exit code 1 signals offenders to CI
func sizecheckCommand(deps modkit.Deps) cli.Command {
	return cli.Command{
		Name:  "sizecheck",
		Usage: "fail when any repository file exceeds the size limit",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "root",
				Value: ".",
				Usage: "directory tree to scan",
			},
			cli.Int64Flag{
				Name:  "max-mb",
				Usage: "size limit in megabytes (overrides CORE_SIZEGUARD_MAX_BYTES)",
			},
		},
		Action: func(c *cli.Context) error {
			checker, err := sizeChecker(deps, c.Int64("max-mb"))
			if err != nil {
				return cli.NewExitError(err.Error(), 1)
			}

			report, err := checker.Check(context.Background(), c.String("root"))
			if err != nil {
				return cli.NewExitError(fmt.Sprintf("sizecheck: %v", err), 1)
			}

			p := message.NewPrinter(language.English)
			if !report.OK() {
				fmt.Println("Found files exceeding size limit:")
				for _, f := range report.Oversized {
					p.Printf("  %s: %.1f MB\n", f.Path, f.MB())
				}
				return cli.NewExitError("", 1)
			}

			p.Printf("Scanned %d files (%d skipped), all within the %d MB limit\n",
				report.Scanned, report.Skipped, report.MaxBytes/(1024*1024))
			return nil
		},
	}
}

// sizeChecker registers the sizeguard module and resolves its checker port
// from the registry; a command line limit overrides the configured one
func sizeChecker(deps modkit.Deps, maxMB int64) (domain.CheckerPort, error) {
	if maxMB > 0 {
		o := sizemod.FromConfig(deps.Cfg)
		return service.New(service.Config{
			MaxBytes:       maxMB * 1024 * 1024,
			SkipDirs:       o.SkipDirs,
			IgnoreSuffixes: o.IgnoreSuffixes,
		}), nil
	}

	m := sizemod.New(deps)
	mod.Register(m.Name(), m.Ports())
	ports, ok := mod.PortsAs[sizemod.Ports](m.Name())
	if !ok {
		return nil, perr.Internalf("sizeguard ports not registered")
	}
	return ports.Checker, nil
}
