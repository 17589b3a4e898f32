// Package save persists player progress between sessions.
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Progress — статистика игрока.
type Progress struct {
	BestRound     int `yaml:"bestRound"`
	TreesFelled   int `yaml:"treesFelled"`
	TrunksChopped int `yaml:"trunksChopped"`
}

// Backend is the subset of *gdata.Manager the store uses.
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

const (
	progressObject   = "progress"
	progressProperty = "record"
)

// Store reads and writes Progress. A store without backend keeps nothing
// and never fails.
type Store struct {
	backend Backend
}

// NewStore wraps backend; nil gives a memory-only store.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open creates a gdata-backed store for appName. On failure it still
// returns a usable memory-only store alongside the error.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open save data: %w", err)
	}
	return NewStore(m), nil
}

// Persistent reports whether the store writes anywhere.
func (s *Store) Persistent() bool {
	return s.backend != nil
}

// Load returns the saved progress or a zero Progress if nothing was saved.
func (s *Store) Load() (Progress, error) {
	if s.backend == nil || !s.backend.ObjectPropExists(progressObject, progressProperty) {
		return Progress{}, nil
	}

	data, err := s.backend.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to load progress: %w", err)
	}
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return p, nil
}

// Save writes p.
func (s *Store) Save(p Progress) error {
	if s.backend == nil {
		return nil
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.backend.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	log.Printf("[SaveStore] progress saved: best round %d, %d trees", p.BestRound, p.TreesFelled)
	return nil
}
