package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLeap loads Leap of Faith configuration.
// Search order: customPath -> ~/.leap/configs/leap.yaml -> ./configs/leap.yaml -> embedded default
//
// Only an explicit customPath can make loading fail; broken files found
// while searching are skipped. The result is not validated, callers run
// Validate after applying presets.
func LoadLeap(customPath string) (LeapConfig, error) {
	var cfg LeapConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("leap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "leap.yaml")); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := decode(defaultLeapYAML, &cfg); err != nil {
		return DefaultLeapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML on top of the defaults, so a partial file only
// overrides the keys it names.
func decode(data []byte, cfg *LeapConfig) error {
	out := DefaultLeapConfig()
	if err := yaml.Unmarshal(data, &out); err != nil {
		return err
	}
	*cfg = out
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leap", "configs", filename)
}

// ApplyLeapPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the table as loaded; the shaft has no progression
// to switch off, every constant stays fixed for the whole process.
func ApplyLeapPreset(cfg *LeapConfig, preset DifficultyPreset) {
	// Never mutate a weights slice shared with the caller's copy.
	cfg.Terrain.Weights = append([]int(nil), cfg.Terrain.Weights...)

	switch preset {
	case DifficultyEasy:
		cfg.Hero.MaxHealth = 5
		scaleWeight(cfg, KindSpike, 1, 2)
		scaleWeight(cfg, KindHeal, 2, 1)
	case DifficultyHard:
		cfg.Hero.MaxHealth = 2
		scaleWeight(cfg, KindSpike, 2, 1)
		scaleWeight(cfg, KindHeal, 1, 2)
		cfg.Timing.SpawnPeriodMS = cfg.Timing.SpawnPeriodMS * 4 / 5
	}
}

// scaleWeight multiplies the weight of kind by num/den.
func scaleWeight(cfg *LeapConfig, kind string, num, den int) {
	for i, k := range cfg.Terrain.Kinds {
		if k == kind && i < len(cfg.Terrain.Weights) {
			cfg.Terrain.Weights[i] = cfg.Terrain.Weights[i] * num / den
		}
	}
}
