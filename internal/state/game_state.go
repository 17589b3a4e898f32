// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	game "go-timber/internal/app"
	"go-timber/internal/config"
	"go-timber/internal/interfaces"
	"go-timber/internal/save"
	"go-timber/internal/system"
	"go-timber/internal/ui"
)

// GameState — состояние игры: дерево, кнопка "CHOP" и подпись раунда
type GameState struct {
	sm            *StateMachine
	world         *game.World
	tracker       *game.ProgressTracker
	renderer      *system.RenderSystem
	roundLabel    *ui.RoundLabel
	chopButton    *ui.Button
	pauseButton   *ui.PauseButton
	statsPanel    *ui.StatsPanel
	lastClickTime time.Time
	started       bool
	Debug         bool
}

func NewGameState(sm *StateMachine, settings *config.Settings, rng interfaces.RandomSource, store *save.Store) *GameState {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	face := basicfont.Face7x13

	roundLabel := ui.NewRoundLabel(config.RoundLabelX, config.RoundLabelY, face)
	world := game.NewWorld(settings, roundLabel, rng)
	chopButton := ui.NewButton(
		float32(config.ScreenWidth-config.ChopButtonW)/2,
		float32(config.ChopButtonY),
		config.ChopButtonW,
		config.ChopButtonH,
		"CHOP",
		face,
	)

	return &GameState{
		sm:          sm,
		world:       world,
		tracker:     game.NewProgressTracker(store, world.Events),
		renderer:    system.NewRenderSystem(world.ECS, system.NewCamera(settings.Origin()), settings.TrunkSize),
		roundLabel:  roundLabel,
		chopButton:  chopButton,
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.ButtonIdleColor),
		statsPanel:  ui.NewStatsPanel(config.StatsPanelX, config.StatsPanelY, face),
	}
}

// Enter запускает первый раунд. При возврате из паузы повторно не запускает.
func (g *GameState) Enter() {
	if g.started {
		return
	}
	g.started = true
	g.world.Controller.Start()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.Debug = !g.Debug
	}

	g.world.Update(deltaTime)
	g.statsPanel.Update()

	tapped := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.Contains(x, y) {
			g.pauseButton.Press()
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
		tapped = tapped || g.chopButton.Contains(x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		tapped = tapped || g.chopButton.Contains(x, y)
	}
	if tapped {
		g.tap()
	}
}

// tap — одно нажатие игрока.
func (g *GameState) tap() {
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()
	g.chopButton.Press()
	g.world.Controller.CollapseTree()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	ctrl := g.world.Controller
	g.renderer.Draw(screen)

	x, y := ebiten.CursorPosition()
	g.chopButton.Draw(screen, ctrl.Enterable(), g.chopButton.Contains(x, y))
	g.pauseButton.Draw(screen)
	g.roundLabel.Draw(screen)
	g.statsPanel.Draw(screen, ctrl.TreesRemaining(), g.tracker.Progress())

	if g.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("phase: %s  trunks: %d/%d  pool: %d free, %d in use  fps: %.0f",
			ctrl.Phase(), ctrl.CollapsedSegments(), ctrl.SegmentCount(),
			g.world.Pool.Free(), g.world.Pool.InUse(), ebiten.ActualFPS()), 4, config.ScreenHeight-16)
	}
}

func (g *GameState) Exit() {
	g.tracker.Flush()
}

// Close сохраняет прогресс при закрытии окна.
func (g *GameState) Close() {
	g.tracker.Flush()
}
