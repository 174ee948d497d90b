package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyVolume               = "settings.volume"
	keyMuted                = "settings.muted"
	keyVibration            = "settings.vibration"
	keyCountdown            = "settings.countdown"
	keyCountdownDuration    = "settings.countdown_duration"
	keyCountdownVibration   = "settings.countdown_vibration"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyActiveColor          = "display.colors.active"
	keyRestColor            = "display.colors.rest"
	keyRoundRestColor       = "display.colors.round_rest"
	keyNotificationsEnabled = "notifications.enabled"
	keySystemCmd            = "system.cmd"
)

// WithViperConfig returns an Option that loads configuration from Viper. A
// config file with the default values is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if c.prompt != nil {
			applyPromptOptions(v, *c.prompt)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// SaveSettings replaces the app settings in the config file at configPath,
// leaving the other sections untouched.
func SaveSettings(configPath string, s SettingsConfig) error {
	if err := s.Validate(); err != nil {
		return err
	}

	v := newViper(configPath)

	err := v.ReadInConfig()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errReadConfig.Wrap(err)
	}

	v.Set(keyVolume, s.Volume)
	v.Set(keyMuted, s.Muted)
	v.Set(keyVibration, s.Vibration)
	v.Set(keyCountdown, s.CountdownEnabled)
	v.Set(keyCountdownDuration, s.CountdownDuration)
	v.Set(keyCountdownVibration, s.CountdownVibration)

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// ResetSettings restores the default app settings in the config file.
func ResetSettings(configPath string) error {
	return SaveSettings(configPath, DefaultSettings())
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()

	v.SetDefault(keyVolume, d.Volume)
	v.SetDefault(keyMuted, d.Muted)
	v.SetDefault(keyVibration, d.Vibration)
	v.SetDefault(keyCountdown, d.CountdownEnabled)
	v.SetDefault(keyCountdownDuration, d.CountdownDuration)
	v.SetDefault(keyCountdownVibration, d.CountdownVibration)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyActiveColor, "#B0DB43")
	v.SetDefault(keyRestColor, "#12EAEA")
	v.SetDefault(keyRoundRestColor, "#C492B1")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySystemCmd, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
