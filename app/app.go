package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/intervals/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the intervals app instance.
func Get() *cli.App {
	intervalsApp := &cli.App{
		Name: "intervals",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Intervals is an interval training timer for the command-line. Build
		routines out of rounds of timed work and rest sets, then run them with
		an alert at every phase change.`,
		UsageText:            "[COMMAND] [OPTIONS] [ROUTINE]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Run a routine",
				ArgsUsage: "[ROUTINE]",
				Action:    startAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List saved routines",
				Flags:   []cli.Flag{jsonFlag},
				Action:  listAction,
			},
			{
				Name:      "show",
				Usage:     "Show the rounds and sets of a routine",
				ArgsUsage: "ROUTINE",
				Flags:     []cli.Flag{jsonFlag},
				Action:    showAction,
			},
			{
				Name:   "new",
				Usage:  "Create a routine",
				Action: newAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a routine",
				ArgsUsage: "ROUTINE",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:   "export",
				Usage:  "Export routines and settings",
				Flags:  []cli.Flag{formatFlag, outputFlag},
				Action: exportAction,
			},
			{
				Name:      "import",
				Usage:     "Replace routines and settings with those in an export file",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{yesFlag},
				Action:    importAction,
			},
			{
				Name:   "history",
				Usage:  "List past runs. Defaults to the last 7 days",
				Flags:  []cli.Flag{sinceFlag, untilFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "stats",
				Usage:  "Show training statistics. Defaults to the last 7 days",
				Flags:  []cli.Flag{sinceFlag, untilFlag},
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "reset-settings",
				Usage:  "Restore the default settings",
				Action: resetSettingsAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			muteFlag,
			disableNotificationFlag,
			cmdFlag,
		},
		Action: startAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return intervalsApp
}
