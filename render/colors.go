package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHitFlash   = tcell.NewRGBColor(200, 50, 50)   // Base hit pulse
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)

	RgbObstacle = tcell.NewRGBColor(90, 90, 90)
	RgbStart    = tcell.NewRGBColor(80, 220, 80)
	RgbBase     = tcell.NewRGBColor(80, 160, 255)
	RgbCursor   = tcell.NewRGBColor(255, 255, 255)

	RgbTower         = tcell.NewRGBColor(230, 230, 230)
	RgbTowerUpgraded = tcell.NewRGBColor(255, 215, 0)
	RgbTowerDisabled = tcell.NewRGBColor(100, 100, 120)
	RgbShield        = tcell.NewRGBColor(120, 200, 255)

	RgbProjectile = tcell.NewRGBColor(255, 255, 160)
	RgbBeam       = tcell.NewRGBColor(255, 80, 80)
	RgbFrost      = tcell.NewRGBColor(160, 220, 255)
	RgbLightning  = tcell.NewRGBColor(200, 200, 255)

	RgbNotification = tcell.NewRGBColor(255, 255, 255)
	RgbModalBg      = tcell.NewRGBColor(128, 0, 128) // Dark purple
	RgbHelp         = tcell.NewRGBColor(150, 150, 150)

	RgbCommon    = tcell.NewRGBColor(200, 200, 200)
	RgbRare      = tcell.NewRGBColor(80, 160, 255)
	RgbEpic      = tcell.NewRGBColor(190, 100, 255)
	RgbLegendary = tcell.NewRGBColor(255, 165, 0)
)

// hexColor resolves a catalog color hint, falling back when unparseable
func hexColor(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
