// internal/app/progress.go
package app

import (
	"log"

	"go-timber/internal/event"
	"go-timber/internal/save"
)

// ProgressTracker считает срубленные деревья и лучший раунд и сохраняет
// их при каждой смене раунда.
type ProgressTracker struct {
	store    *save.Store
	progress save.Progress
	dirty    bool
}

// NewProgressTracker loads saved progress from store and subscribes to d.
func NewProgressTracker(store *save.Store, d *event.Dispatcher) *ProgressTracker {
	if store == nil {
		store = save.NewStore(nil)
	}
	pt := &ProgressTracker{store: store}
	if p, err := store.Load(); err != nil {
		log.Printf("[ProgressTracker] Warning: %v (starting from zero)", err)
	} else {
		pt.progress = p
	}

	d.Subscribe(event.RoundStarted, pt)
	d.Subscribe(event.TrunkCollapsed, pt)
	d.Subscribe(event.TreeFelled, pt)
	return pt
}

func (pt *ProgressTracker) OnEvent(e event.Event) {
	switch e.Type {
	case event.TrunkCollapsed:
		pt.progress.TrunksChopped++
		pt.dirty = true
	case event.TreeFelled:
		pt.progress.TreesFelled++
		pt.dirty = true
	case event.RoundStarted:
		data, ok := e.Data.(event.RoundData)
		if !ok {
			return
		}
		if data.Round > pt.progress.BestRound {
			pt.progress.BestRound = data.Round
			pt.dirty = true
		}
		pt.Flush()
	}
}

// Flush saves progress if anything changed since the last save.
func (pt *ProgressTracker) Flush() {
	if !pt.dirty {
		return
	}
	if err := pt.store.Save(pt.progress); err != nil {
		log.Printf("[ProgressTracker] Warning: %v", err)
		return
	}
	pt.dirty = false
}

// Progress returns the current counters.
func (pt *ProgressTracker) Progress() save.Progress {
	return pt.progress
}
