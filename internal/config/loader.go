package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSpiral loads the spiral configuration.
// Search order: customPath -> ~/.spiral/configs/spiral.yaml -> ./configs/spiral.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets.
func LoadSpiral(customPath string) (SpiralConfig, error) {
	if customPath != "" {
		cfg := DefaultSpiralConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("spiral.yaml"), filepath.Join("configs", "spiral.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultSpiralConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultSpiralConfig()
	if err := yaml.Unmarshal(defaultSpiralYAML, &cfg); err != nil {
		return DefaultSpiralConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spiral", "configs", filename)
}

// ApplySpiralPreset modifies the config based on a difficulty preset.
func ApplySpiralPreset(cfg *SpiralConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Level.Quota = 40
		if len(cfg.Palette) > 4 {
			cfg.Palette = cfg.Palette[:4]
		}
	case DifficultyHard:
		cfg.Level.Quota = 80
		cfg.Projectile.Speed = 20
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c SpiralConfig) Validate() error {
	var errs []error
	if c.Sphere.Radius <= 0 {
		errs = append(errs, fmt.Errorf("sphere.radius must be positive, got %v", c.Sphere.Radius))
	}
	if c.Path.Samples < 2 {
		errs = append(errs, fmt.Errorf("path.samples must be at least 2, got %d", c.Path.Samples))
	}
	if c.Path.Shrink < 0 || c.Path.Shrink >= 1 {
		errs = append(errs, fmt.Errorf("path.shrink must be in [0, 1), got %v", c.Path.Shrink))
	}
	if len(c.Palette) < 3 {
		errs = append(errs, fmt.Errorf("palette needs at least 3 colors, got %d", len(c.Palette)))
	}
	if c.Match.MinRun < 2 {
		errs = append(errs, fmt.Errorf("match.min_run must be at least 2, got %d", c.Match.MinRun))
	}
	if c.Level.Quota < 1 {
		errs = append(errs, fmt.Errorf("level.quota must be positive, got %d", c.Level.Quota))
	}
	if c.Projectile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("projectile.speed must be positive, got %v", c.Projectile.Speed))
	}
	if c.View.CellWidth <= 0 || c.View.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("view cell size must be positive, got %vx%v", c.View.CellWidth, c.View.CellHeight))
	}
	return errors.Join(errs...)
}
