// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-timber/internal/config"
	"go-timber/internal/save"
)

const (
	panelWidth     = 150
	panelPadding   = 8
	animationSpeed = 6.0
)

// StatsPanel shows the trees left in the round and saved progress.
// It slides in from the top edge on first draw.
type StatsPanel struct {
	X        float64
	currentY float64
	targetY  float64
	fontFace font.Face
}

// NewStatsPanel creates a panel anchored at (x, y).
func NewStatsPanel(x, y float64, fontFace font.Face) *StatsPanel {
	return &StatsPanel{
		X:        x,
		currentY: -100,
		targetY:  y,
		fontFace: fontFace,
	}
}

func (p *StatsPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
		return
	}
	p.currentY += math.Copysign(animationSpeed, diff)
}

// Lines формирует строки панели.
func (p *StatsPanel) Lines(treesRemaining int, progress save.Progress) []string {
	return []string{
		fmt.Sprintf("Trees left: %d", treesRemaining),
		fmt.Sprintf("Best round: %d", progress.BestRound),
		fmt.Sprintf("Trees felled: %d", progress.TreesFelled),
		fmt.Sprintf("Trunks: %d", progress.TrunksChopped),
	}
}

func (p *StatsPanel) Draw(screen *ebiten.Image, treesRemaining int, progress save.Progress) {
	if p.fontFace == nil {
		return
	}
	lines := p.Lines(treesRemaining, progress)
	h := float32(len(lines)*config.StatsLineHeight + panelPadding*2)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.currentY), panelWidth, h, config.OverlayColor, false)

	y := int(p.currentY) + panelPadding + config.StatsLineHeight - 4
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, int(p.X)+panelPadding, y, config.TextLightColor)
		y += config.StatsLineHeight
	}
}
