package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/viper"
)

const asciiLogo = `
██╗███╗   ██╗████████╗███████╗██████╗ ██╗   ██╗ █████╗ ██╗     ███████╗
██║████╗  ██║╚══██╔══╝██╔════╝██╔══██╗██║   ██║██╔══██╗██║     ██╔════╝
██║██╔██╗ ██║   ██║   █████╗  ██████╔╝██║   ██║███████║██║     ███████╗
██║██║╚██╗██║   ██║   ██╔══╝  ██╔══██╗╚██╗ ██╔╝██╔══██║██║     ╚════██║
██║██║ ╚████║   ██║   ███████╗██║  ██║ ╚████╔╝ ██║  ██║███████╗███████║
╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝  ╚═══╝  ╚═╝  ╚═╝╚══════╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	CountdownDuration int
	Sound             bool
	Notifications     bool
	DarkTheme         bool
}

// WithPromptConfig returns an Option that asks for the basic settings when no
// config file exists yet. The answers are written to the config file by
// WithViperConfig.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.prompt = &opts

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		CountdownDuration: DefaultSettings().CountdownDuration,
		Sound:             true,
		Notifications:     true,
		DarkTheme:         true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Intervals for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'intervals edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Countdown before a routine starts").
				Options(
					huh.NewOption("3 seconds", 3),
					huh.NewOption("5 seconds", 5).Selected(true),
					huh.NewOption("10 seconds", 10),
				).
				Value(&opts.CountdownDuration),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a sound when the phase changes?").
				Value(&opts.Sound),
			huh.NewConfirm().
				Title("Show a desktop notification when a routine ends?").
				Value(&opts.Notifications),
			huh.NewConfirm().
				Title("Does your terminal use a dark theme?").
				Value(&opts.DarkTheme),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions records the user's prompt responses in v.
func applyPromptOptions(v *viper.Viper, opts PromptOptions) {
	v.Set(keyCountdownDuration, opts.CountdownDuration)
	v.Set(keyMuted, !opts.Sound)
	v.Set(keyNotificationsEnabled, opts.Notifications)
	v.Set(keyDarkTheme, opts.DarkTheme)
}
