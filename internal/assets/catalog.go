// Package assets resolves Word Garden cue names to bundled art and sounds.
// The bundle is a YAML file embedded in the binary; a missing entry is logged
// and skipped, never fatal.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed garden.yaml
var bundleYAML []byte

// ErrNotFound is returned when a cue has no bundled asset.
var ErrNotFound = errors.New("assets: not found")

// Sound describes how a sound cue is played in a terminal.
type Sound struct {
	Bell    int    `yaml:"bell"`    // Number of BEL characters to emit
	Caption string `yaml:"caption"` // Text shown while the sound plays
}

// Bundle is the decoded asset file.
type Bundle struct {
	Images map[string]string `yaml:"images"`
	Sounds map[string]Sound  `yaml:"sounds"`
}

// Catalog looks up assets by cue name.
type Catalog struct {
	bundle Bundle
	logger *log.Logger
}

// Load decodes the embedded bundle.
func Load(logger *log.Logger) (*Catalog, error) {
	return Parse(bundleYAML, logger)
}

// Parse decodes a bundle from YAML data.
func Parse(data []byte, logger *log.Logger) (*Catalog, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("assets: cannot parse bundle: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Catalog{bundle: b, logger: logger}, nil
}

// Image returns the art for key.
func (c *Catalog) Image(key string) (string, error) {
	art, ok := c.bundle.Images[key]
	if !ok {
		return "", fmt.Errorf("%w: image %q", ErrNotFound, key)
	}
	return strings.TrimRight(art, "\n"), nil
}

// Sound returns the sound for name.
func (c *Catalog) Sound(name string) (Sound, error) {
	s, ok := c.bundle.Sounds[name]
	if !ok {
		return Sound{}, fmt.Errorf("%w: sound %q", ErrNotFound, name)
	}
	return s, nil
}

// Art returns the art for key, or "" after logging when it is missing.
func (c *Catalog) Art(key string) string {
	art, err := c.Image(key)
	if err != nil {
		c.logger.Warn("missing image", "key", key)
		return ""
	}
	return art
}

// ImageKeys returns all image keys, sorted.
func (c *Catalog) ImageKeys() []string {
	keys := make([]string, 0, len(c.bundle.Images))
	for k := range c.bundle.Images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
