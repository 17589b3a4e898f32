// internal/interfaces/game_context.go
package interfaces

import "go-timber/internal/types"

// TrunkPool выдает переиспользуемые сегменты ствола и забирает их обратно.
type TrunkPool interface {
	// Acquire возвращает неактивный сегмент, перемещенный в position
	// и привязанный к parent. Сегмент становится активным и принадлежит вызывающему.
	Acquire(position types.Vec3, parent types.EntityID) types.EntityID
	// Release деактивирует сегмент и возвращает владение пулу.
	Release(id types.EntityID)
	BelongsToPool(id types.EntityID) bool
}

// TreeAnimator проигрывает анимации дерева.
type TreeAnimator interface {
	// PlayEnterAnimation перемещает subject из from в to и вызывает
	// onComplete ровно один раз по завершении.
	PlayEnterAnimation(subject types.EntityID, from, to types.Vec3, onComplete func())
	// PlayCollapseAnimation — fire-and-forget, завершение никто не ждет.
	PlayCollapseAnimation(subject types.EntityID, from, to types.Vec3)
}

// RoundDisplay показывает номер раунда.
type RoundDisplay interface {
	SetText(text string)
}

// RandomSource — источник случайных чисел в диапазоне [min, max).
type RandomSource interface {
	Range(min, max int) int
}
