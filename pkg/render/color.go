// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by k, clamped to 255. Alpha is kept.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: clamp(float64(c.R) * k),
		G: clamp(float64(c.G) * k),
		B: clamp(float64(c.B) * k),
		A: c.A,
	}
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
