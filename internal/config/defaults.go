package config

import (
	_ "embed"
	"slices"

	"github.com/vovakirdan/wordgarden/internal/garden"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the default Word Garden configuration.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		Words:      slices.Clone(garden.DefaultWords),
		MaxGuesses: garden.DefaultMaxGuesses,
		WiltDelay:  garden.DefaultWiltDelay,
		Shuffle:    false,
	}
}
