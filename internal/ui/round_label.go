// internal/ui/round_label.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-timber/internal/config"
)

// RoundLabel отображает номер текущего раунда. Реализует interfaces.RoundDisplay.
type RoundLabel struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	LastChange       time.Time
	fontFace         font.Face
	text             string
}

// NewRoundLabel создает подпись раунда.
func NewRoundLabel(x, y int, fontFace font.Face) *RoundLabel {
	return &RoundLabel{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
		fontFace:         fontFace,
	}
}

// SetText меняет подпись; повтор того же текста вспышку не запускает.
func (l *RoundLabel) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.LastChange = time.Now()
}

// Text returns the current label.
func (l *RoundLabel) Text() string {
	return l.text
}

// Draw отрисовывает подпись с обводкой. Сразу после смены раунда текст
// вспыхивает и плавно возвращается к обычному цвету.
func (l *RoundLabel) Draw(screen *ebiten.Image) {
	if l.text == "" || l.fontFace == nil {
		return
	}

	for y := -l.OutlineThickness; y <= l.OutlineThickness; y++ {
		for x := -l.OutlineThickness; x <= l.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, l.text, l.fontFace, l.X+x, l.Y+y, l.OutlineColor)
		}
	}
	text.Draw(screen, l.text, l.fontFace, l.X, l.Y, l.flashColor())
}

func (l *RoundLabel) flashColor() color.RGBA {
	elapsed := time.Since(l.LastChange).Seconds()
	k := math.Exp(-elapsed * 4)
	c := l.Color
	c.G = uint8(float64(c.G) * (1 - 0.5*k))
	c.B = uint8(float64(c.B) * (1 - 0.8*k))
	return c
}
