// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 800
	MaxDeltaTime = 0.06
	TPS          = 60

	// TrunkSize — высота одного сегмента ствола в мировых единицах.
	TrunkSize = 5.0

	MinTreesPerRound = 2
	MaxTreesPerRound = 5 // не включительно
	MinTreeSize      = 8
	MaxTreeSize      = 16 // не включительно

	EnterDuration    = 0.8  // секунды
	CollapseDuration = 0.15 // секунды

	ClickCooldown = 60 // миллисекунды между тапами

	// Проекция мира на экран
	PixelsPerUnit = 9.0
	GroundY       = ScreenHeight - 140

	TrunkWidth      = 6.0 // в мировых единицах
	TrunkGap        = 0.4
	RoundLabelX     = 24
	RoundLabelY     = 40
	ChopButtonW     = 200
	ChopButtonH     = 64
	ChopButtonY     = ScreenHeight - 100
	StatsPanelX     = ScreenWidth - 170
	StatsPanelY     = 24
	StatsLineHeight = 16
	PauseButtonX    = 36
	PauseButtonY    = 80
	PauseButtonSize = 16

	SaveAppName = "go_timber"
)

// TreeOrigin — позиция дерева перед камерой, куда оно выезжает из-под земли.
var TreeOrigin = [3]float64{5, 0, 15}

var (
	BackgroundColor  = color.RGBA{135, 200, 235, 255}
	GroundColor      = color.RGBA{80, 140, 60, 255}
	TrunkColor       = color.RGBA{120, 78, 40, 255}
	TrunkAltColor    = color.RGBA{140, 92, 50, 255}
	ButtonColor      = color.RGBA{200, 70, 50, 255}
	ButtonHoverColor = color.RGBA{230, 95, 70, 255}
	ButtonIdleColor  = color.RGBA{120, 120, 120, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
)
