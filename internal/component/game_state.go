// internal/component/game_state.go
package component

// TreePhase — фаза жизненного цикла текущего дерева.
type TreePhase int

const (
	Generating TreePhase = iota
	Entering             // анимация появления, рубить нельзя
	Ready                // можно рубить
	Collapsing           // срублен хотя бы один сегмент
	Complete
)

func (p TreePhase) String() string {
	switch p {
	case Generating:
		return "generating"
	case Entering:
		return "entering"
	case Ready:
		return "ready"
	case Collapsing:
		return "collapsing"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Round — счетчики текущего раунда.
type Round struct {
	Number         int
	TreesRemaining int
}

// Tree — счетчики текущего дерева.
type Tree struct {
	SegmentCount      int
	CollapsedSegments int
	Enterable         bool
	Phase             TreePhase
}
