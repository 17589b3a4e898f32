// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы в углу экрана
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Color         color.Color
}

func NewPauseButton(x, y, size float32, c color.Color) *PauseButton {
	return &PauseButton{
		X:     x,
		Y:     y,
		Size:  size,
		Color: c,
	}
}

// Contains проверяет попадание в круг кнопки.
func (b *PauseButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) Press() {
	b.LastClickTime = time.Now()
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	vector.DrawFilledCircle(screen, b.X, b.Y, size, b.Color, true)
	vector.StrokeCircle(screen, b.X, b.Y, size, 2, color.White, true)

	// Два прямоугольника (pause)
	width := size * 0.3
	height := size
	spacing := size * 0.25
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, color.White, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, color.White, false)
}
