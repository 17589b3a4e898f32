// internal/app/world.go
package app

import (
	"go-timber/internal/anim"
	"go-timber/internal/config"
	"go-timber/internal/entity"
	"go-timber/internal/event"
	"go-timber/internal/interfaces"
	"go-timber/internal/pool"
	"go-timber/internal/types"
)

// World собирает сцену: ECS, пул сегментов, аниматор и контроллер раундов.
type World struct {
	ECS        *entity.ECS
	Pool       *pool.TrunkPool
	Animator   *anim.Animator
	Events     *event.Dispatcher
	Controller *RoundController
	TreeRoot   types.EntityID
}

// NewWorld wires a scene around display and rng. The controller is not
// started; call Controller.Start.
func NewWorld(settings *config.Settings, display interfaces.RoundDisplay, rng interfaces.RandomSource) *World {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ecs := entity.NewECS()
	trunks := pool.NewTrunkPool(ecs)
	trunks.Prewarm(settings.TreeSize.Max)

	treeRoot := ecs.NewEntity()
	ecs.SetPosition(treeRoot, settings.Origin())

	animator := anim.NewAnimator(ecs, settings.EnterDuration, settings.CollapseDuration)
	events := event.NewDispatcher()

	return &World{
		ECS:      ecs,
		Pool:     trunks,
		Animator: animator,
		Events:   events,
		TreeRoot: treeRoot,
		Controller: NewRoundController(Deps{
			Pool:     trunks,
			Animator: animator,
			Display:  display,
			Rand:     rng,
			Events:   events,
			Settings: settings,
			TreeRoot: treeRoot,
		}),
	}
}

// Update продвигает анимации на deltaTime секунд.
func (w *World) Update(deltaTime float64) {
	w.ECS.GameTime += deltaTime
	w.Animator.Update(deltaTime)
}
