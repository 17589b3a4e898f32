// cmd/game/main.go
package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-timber/internal/config"
	"go-timber/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	onClose        func()
}

func (a *AppGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if a.onClose != nil {
			a.onClose()
		}
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	Execute()
}
