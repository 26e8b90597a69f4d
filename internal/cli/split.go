package cli

import (
	"context"

	"github.com/urfave/cli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"maidata/internal/modkit"
	mod "maidata/internal/modkit/module"
	"maidata/internal/services/prsplit/domain"
	prmod "maidata/internal/services/prsplit/module"
)

// splitCommand runs the atomic-diff split over an input NDJSON file
func splitCommand(deps modkit.Deps) cli.Command {
	return cli.Command{
		Name:  "split",
		Usage: "split raw PR records into atomic diffs",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:     "input",
				Usage:    "path to input NDJSON file with raw PR records",
				Required: true,
			},
			cli.StringFlag{
				Name:     "output",
				Usage:    "path to output NDJSON file for atomic diffs",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			m := prmod.New(deps)
			mod.Register(m.Name(), m.Ports())
			ports, ok := mod.PortsAs[prmod.Ports](m.Name())
			if !ok {
				return cli.NewExitError("prsplit ports not registered", 1)
			}
			runner := ports.Runner

			sum, err := runner.RunFile(context.Background(), c.String("input"), c.String("output"))
			if err != nil {
				return cli.NewExitError(err.Error(), 1)
			}

			p := message.NewPrinter(language.English)
			p.Printf("\nSplit summary (run %s):\n", sum.RunID)
			p.Printf("Total PRs processed: %d\n", sum.Read)
			p.Printf("Atomic records written: %d\n", sum.Emitted)
			p.Printf("Skipped: %d\n", sum.SkippedTotal())
			for _, reason := range []domain.SkipReason{
				domain.SkipInvalid, domain.SkipVanished, domain.SkipFetch, domain.SkipQuality,
			} {
				if n := sum.Skipped[reason]; n > 0 {
					p.Printf("  %s: %d\n", reason, n)
				}
			}
			if sum.BadLines > 0 {
				p.Printf("Malformed input lines: %d\n", sum.BadLines)
			}
			return nil
		},
	}
}
