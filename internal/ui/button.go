// internal/ui/button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-timber/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H    float32
	Text          string
	TextColor     color.Color
	BgColor       color.Color
	HoverColor    color.Color
	DisabledColor color.Color
	LastClickTime time.Time
	fontFace      font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string, fontFace font.Face) *Button {
	return &Button{
		X:             x,
		Y:             y,
		W:             w,
		H:             h,
		Text:          label,
		TextColor:     config.TextLightColor,
		BgColor:       config.ButtonColor,
		HoverColor:    config.ButtonHoverColor,
		DisabledColor: config.ButtonIdleColor,
		fontFace:      fontFace,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Press запоминает время нажатия для анимации отклика.
func (b *Button) Press() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку. Неактивная кнопка серая.
func (b *Button) Draw(screen *ebiten.Image, enabled, hovered bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	shrink := float32(0.08 * math.Exp(-elapsed*8))
	w, h := b.W*(1-shrink), b.H*(1-shrink)
	x, y := b.X+(b.W-w)/2, b.Y+(b.H-h)/2

	bg := b.BgColor
	switch {
	case !enabled:
		bg = b.DisabledColor
	case hovered:
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextDarkColor, false)

	if b.fontFace == nil {
		return
	}
	bounds := text.BoundString(b.fontFace, b.Text)
	tx := int(b.X+b.W/2) - bounds.Dx()/2
	ty := int(b.Y+b.H/2) + bounds.Dy()/2
	text.Draw(screen, b.Text, b.fontFace, tx, ty, b.TextColor)
}
