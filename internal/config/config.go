// Package config loads intervals settings from the config file, first-run
// prompts and command-line flags
package config

import (
	"fmt"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		System        SystemConfig       `mapstructure:"system"`
		prompt        *PromptOptions
	}

	// SettingsConfig holds the app settings shared with the mobile app. The
	// JSON names match its export format.
	SettingsConfig struct {
		Volume             int  `mapstructure:"volume"              json:"volume"                              yaml:"volume"`
		Muted              bool `mapstructure:"muted"               json:"isMuted"                             yaml:"muted"`
		Vibration          bool `mapstructure:"vibration"           json:"vibrationEnabled"                    yaml:"vibration"`
		CountdownEnabled   bool `mapstructure:"countdown"           json:"preRoutineCountdownEnabled"          yaml:"countdown"`
		CountdownDuration  int  `mapstructure:"countdown_duration"  json:"preRoutineCountdownDuration"         yaml:"countdown_duration"`
		CountdownVibration bool `mapstructure:"countdown_vibration" json:"preRoutineCountdownVibrationEnabled" yaml:"countdown_vibration"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Colors         PhaseColors `mapstructure:"colors"`
		DarkTheme      bool        `mapstructure:"dark_theme"`
		TwentyFourHour bool        `mapstructure:"24hr_clock"`
	}

	// PhaseColors maps each timer phase to a hex colour.
	PhaseColors struct {
		Active    string `mapstructure:"active"`
		Rest      string `mapstructure:"rest"`
		RoundRest string `mapstructure:"round_rest"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		// Cmd is executed after a routine is completed
		Cmd        string `mapstructure:"cmd"`
		ConfigPath string `mapstructure:"-"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() SettingsConfig {
	return SettingsConfig{
		Volume:             100,
		Muted:              false,
		Vibration:          true,
		CountdownEnabled:   true,
		CountdownDuration:  5,
		CountdownVibration: true,
	}
}

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfigOption, err)
		}
	}

	cfg.prompt = nil

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
