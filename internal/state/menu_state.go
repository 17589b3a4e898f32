// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-timber/internal/config"
)

// MenuState — заставка перед игрой
type MenuState struct {
	sm   *StateMachine
	next func() State
}

// NewMenuState создает меню; next строит игровое состояние по нажатию.
func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	title := "TIMBER"
	hint := "tap or press SPACE to start"
	text.Draw(screen, title, face, (config.ScreenWidth-text.BoundString(face, title).Dx())/2, config.ScreenHeight/2-20, config.TextDarkColor)
	text.Draw(screen, hint, face, (config.ScreenWidth-text.BoundString(face, hint).Dx())/2, config.ScreenHeight/2+10, config.TextDarkColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
