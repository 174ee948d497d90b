package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Silence the alert that sounds when a phase changes",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a routine is completed",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after a routine is completed",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include runs after this time (e.g. '2 weeks ago', 'last monday')",
		Value: "7 days ago",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include runs before this time (e.g. 'yesterday')",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: json or yaml",
		Value:   formatJSON,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to this file instead of stdout",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)
