package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Cmd           string
	Mute          bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Cmd:           ctx.String("cmd"),
			Mute:          ctx.Bool("mute"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Flags only ever
// override the config file when they are set.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Mute {
		c.Settings.Muted = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Cmd != "" {
		c.System.Cmd = opts.Cmd
	}
}
