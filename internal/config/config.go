// Package config provides YAML-based configuration loading for Word Garden,
// with environment overrides for container and SSH deployments.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/wordgarden/internal/garden"
)

// GardenConfig contains all configuration for a Word Garden session.
type GardenConfig struct {
	Words      []string      `yaml:"words" env:"WORDS" envSeparator:","`
	MaxGuesses int           `yaml:"max_guesses" env:"MAX_GUESSES"`
	WiltDelay  time.Duration `yaml:"wilt_delay" env:"WILT_DELAY"`
	Shuffle    bool          `yaml:"shuffle" env:"SHUFFLE"`
}

// Validate normalizes the word list and checks the remaining fields.
func (c *GardenConfig) Validate() error {
	words, err := garden.NormalizeWords(c.Words)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Words = words

	if c.MaxGuesses < 1 {
		return fmt.Errorf("config: max_guesses must be at least 1, got %d", c.MaxGuesses)
	}
	if c.WiltDelay < 0 {
		return fmt.Errorf("config: wilt_delay must not be negative, got %s", c.WiltDelay)
	}
	return nil
}

// NewSession builds a garden session from the config.
// When Shuffle is set the word order is derived from seed.
func (c GardenConfig) NewSession(seed int64) (garden.Session, error) {
	words := c.Words
	if c.Shuffle {
		words = garden.ShuffleWords(words, seed)
	}
	return garden.NewSession(words,
		garden.WithMaxGuesses(c.MaxGuesses),
		garden.WithWiltDelay(c.WiltDelay),
	)
}
