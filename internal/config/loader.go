package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. WORDGARDEN_WORDS.
const EnvPrefix = "WORDGARDEN_"

// Load loads Word Garden configuration, applies environment overrides and
// validates the result.
// Search order: customPath -> ~/.wordgarden/configs/garden.yaml -> ./configs/garden.yaml -> embedded default
func Load(customPath string) (GardenConfig, error) {
	cfg, err := loadYAML(customPath)
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("config: failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(customPath string) (GardenConfig, error) {
	// Missing keys keep their defaults.
	cfg := DefaultGardenConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultGardenConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "garden.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultGardenConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGardenYAML, &cfg); err != nil {
		return DefaultGardenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders the config as YAML, as it would appear in garden.yaml.
func Marshal(cfg GardenConfig) ([]byte, error) {
	out := struct {
		Words      []string `yaml:"words"`
		MaxGuesses int      `yaml:"max_guesses"`
		WiltDelay  string   `yaml:"wilt_delay"`
		Shuffle    bool     `yaml:"shuffle"`
	}{
		Words:      cfg.Words,
		MaxGuesses: cfg.MaxGuesses,
		WiltDelay:  cfg.WiltDelay.String(),
		Shuffle:    cfg.Shuffle,
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordgarden", "configs", filename)
}
