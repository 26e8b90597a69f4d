// Package cli defines the maidata command line surface: the repository
// size guard, the PR split pipeline, and the warehouse query presets
package cli

import (
	"github.com/urfave/cli"

	"maidata/internal/core/version"
	"maidata/internal/modkit"
	"maidata/internal/platform/config"
	"maidata/internal/platform/logger"
)

// NewApp builds the cli application with all commands wired
func NewApp() *cli.App {
	logger.Init(logger.FromEnv())

	deps := modkit.Deps{
		Log: *logger.Get(),
		Cfg: config.New(),
	}

	app := cli.NewApp()
	app.Name = "maidata"
	app.Usage = "PR data tooling: repository size guard and atomic-diff splitting"
	app.Version = version.Info().String()
	app.Commands = []cli.Command{
		sizecheckCommand(deps),
		splitCommand(deps),
		queryCommand(),
	}
	return app
}
