// internal/event/types.go
package event

const (
	RoundStarted   EventType = "RoundStarted"   // Начался новый раунд
	TreeGenerated  EventType = "TreeGenerated"  // Дерево построено, идет анимация появления
	TreeReady      EventType = "TreeReady"      // Дерево можно рубить
	TrunkCollapsed EventType = "TrunkCollapsed" // Срублен нижний сегмент
	TreeFelled     EventType = "TreeFelled"     // Дерево срублено полностью
)

// RoundData — данные для RoundStarted.
type RoundData struct {
	Round          int
	TreesRemaining int
}

// TreeData — данные для событий дерева.
type TreeData struct {
	Round             int
	SegmentCount      int
	CollapsedSegments int
}
