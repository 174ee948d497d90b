package config

import (
	"regexp"
)

const (
	minVolume = 0
	maxVolume = 100

	minCountdown = 3
	maxCountdown = 10
)

// Color format validation.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}

	colors := []struct {
		phase string
		value string
	}{
		{"active", c.Display.Colors.Active},
		{"rest", c.Display.Colors.Rest},
		{"round rest", c.Display.Colors.RoundRest},
	}

	for _, v := range colors {
		if !hexColorRegex.MatchString(v.value) {
			return errInvalidColor.Fmt(v.phase, v.value)
		}
	}

	return nil
}

// Validate checks that the settings are within their allowed ranges.
func (s *SettingsConfig) Validate() error {
	if s.Volume < minVolume || s.Volume > maxVolume {
		return errInvalidVolume.Fmt(minVolume, maxVolume, s.Volume)
	}

	if s.CountdownDuration < minCountdown || s.CountdownDuration > maxCountdown {
		return errInvalidCountdown.Fmt(
			minCountdown,
			maxCountdown,
			s.CountdownDuration,
		)
	}

	return nil
}
