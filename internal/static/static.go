// Package static embeds static files into the binary
package static

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/intervals/internal/routine"
)

const presetsFile = "files/presets.yml"

//go:embed files/*
var embeddedFiles embed.FS

// Presets returns the built-in routines that seed an empty store.
func Presets() ([]routine.Routine, error) {
	b, err := embeddedFiles.ReadFile(presetsFile)
	if err != nil {
		return nil, err
	}

	var presets []routine.Routine

	if err := yaml.Unmarshal(b, &presets); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}

	for i := range presets {
		if err := presets[i].ValidateForSave(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", presets[i].ID, err)
		}
	}

	return presets, nil
}
