package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-timber/internal/types"
)

// IntRange — полуоткрытый диапазон [Min, Max).
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Settings holds the tunables that may be overridden from a YAML file.
// Zero-valued fields in the file keep their defaults.
type Settings struct {
	TrunkSize        float64    `yaml:"trunkSize"`
	TreesPerRound    IntRange   `yaml:"treesPerRound"`
	TreeSize         IntRange   `yaml:"treeSize"`
	TreeOrigin       [3]float64 `yaml:"treeOrigin"`
	EnterDuration    float64    `yaml:"enterDuration"`
	CollapseDuration float64    `yaml:"collapseDuration"`
	Seed             int64      `yaml:"seed"`
	SaveProgress     bool       `yaml:"saveProgress"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		TrunkSize:        TrunkSize,
		TreesPerRound:    IntRange{Min: MinTreesPerRound, Max: MaxTreesPerRound},
		TreeSize:         IntRange{Min: MinTreeSize, Max: MaxTreeSize},
		TreeOrigin:       TreeOrigin,
		EnterDuration:    EnterDuration,
		CollapseDuration: CollapseDuration,
		SaveProgress:     true,
	}
}

// Origin returns TreeOrigin as a vector.
func (s *Settings) Origin() types.Vec3 {
	return types.Vec3{X: s.TreeOrigin[0], Y: s.TreeOrigin[1], Z: s.TreeOrigin[2]}
}

// Validate проверяет, что диапазоны непустые, а размеры положительные.
func (s *Settings) Validate() error {
	var errs []error
	if s.TrunkSize <= 0 {
		errs = append(errs, fmt.Errorf("trunkSize must be positive, got %v", s.TrunkSize))
	}
	if s.TreesPerRound.Min < 1 || s.TreesPerRound.Max <= s.TreesPerRound.Min {
		errs = append(errs, fmt.Errorf("treesPerRound [%d,%d) is empty or below 1", s.TreesPerRound.Min, s.TreesPerRound.Max))
	}
	if s.TreeSize.Min < 1 || s.TreeSize.Max <= s.TreeSize.Min {
		errs = append(errs, fmt.Errorf("treeSize [%d,%d) is empty or below 1", s.TreeSize.Min, s.TreeSize.Max))
	}
	if s.EnterDuration <= 0 || s.CollapseDuration <= 0 {
		errs = append(errs, errors.New("animation durations must be positive"))
	}
	return errors.Join(errs...)
}

// LoadSettings reads a YAML settings file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}
