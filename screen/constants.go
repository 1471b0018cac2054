package screen

import "image/color"

// Color constants
var (
	colorBackground  = color.NRGBA{R: 8, G: 12, B: 30, A: 255}
	colorWhite       = color.NRGBA{R: 255, G: 241, B: 232, A: 255}
	colorLightGray   = color.NRGBA{R: 194, G: 195, B: 199, A: 255}
	colorDarkGray    = color.NRGBA{R: 95, G: 87, B: 79, A: 255}
	colorDarkBlue    = color.NRGBA{R: 29, G: 43, B: 83, A: 255}
	colorRed         = color.NRGBA{R: 255, G: 0, B: 77, A: 255}
	colorDeepRed     = color.NRGBA{R: 170, G: 35, B: 35, A: 255}
	colorOrange      = color.NRGBA{R: 255, G: 163, B: 0, A: 255}
	colorYellow      = color.NRGBA{R: 255, G: 236, B: 39, A: 255}
	colorGreen       = color.NRGBA{R: 0, G: 228, B: 54, A: 255}
	colorBlue        = color.NRGBA{R: 41, G: 173, B: 255, A: 255}
	colorLightBlue   = color.NRGBA{R: 120, G: 210, B: 255, A: 255}
	colorShieldBlue  = color.NRGBA{R: 60, G: 150, B: 255, A: 255}
	colorPink        = color.NRGBA{R: 255, G: 119, B: 168, A: 255}
	colorCyan        = color.NRGBA{R: 0, G: 255, B: 204, A: 255}
	colorLavender    = color.NRGBA{R: 131, G: 118, B: 156, A: 255}
	colorGold        = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	colorLightGreen  = color.NRGBA{R: 120, G: 255, B: 160, A: 255}
	colorPanel       = color.NRGBA{R: 10, G: 10, B: 30, A: 220}
	colorHitbox      = color.NRGBA{R: 0, G: 255, B: 0, A: 160}
	colorTouchButton = color.NRGBA{R: 60, G: 160, B: 255, A: 60}
)

// Effect constants
const (
	starCount          = 90
	sparkCount         = 8
	explosionSparks    = 18
	bossExplosionParts = 60
	sparkDrag          = 0.88
	floatingTextRise   = 1.2
	floatingTextLife   = 45
	ringLife           = 20
	maxParticles       = 600
)

// UI constants
const (
	hudMarginX        = 8
	hudMarginY        = 8
	hudLineHeight     = 16
	bossBarHeight     = 8
	windowedSizeRatio = 0.9
)
