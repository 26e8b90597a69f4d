package cli

import (
	"fmt"

	"github.com/urfave/cli"

	"maidata/queries"
)

// queryCommand prints a warehouse query preset so it can be pasted into
// (or piped to) the external analytics service
func queryCommand() cli.Command {
	return cli.Command{
		Name:      "query",
		Usage:     "print a warehouse query preset",
		ArgsUsage: "[preset name]",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "list",
				Usage: "list available presets",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("list") || c.NArg() == 0 {
				for _, p := range queries.All() {
					fmt.Println(p.Name)
				}
				return nil
			}

			name := c.Args().First()
			p, ok := queries.ByName(name)
			if !ok {
				return cli.NewExitError(fmt.Sprintf("unknown preset %q", name), 1)
			}
			fmt.Print(p.SQL)
			return nil
		},
	}
}
