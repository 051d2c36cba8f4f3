package ui

import (
	"image/color"

	"QuakeTools/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OverlayTheme is a dark theme that keeps the overlay readable over the game.
type OverlayTheme struct {
	fyne.Theme
}

// NewOverlayTheme creates a new instance of the overlay theme.
func NewOverlayTheme() fyne.Theme {
	return &OverlayTheme{Theme: theme.DefaultTheme()}
}

// Color forces the dark variant and the panel background.
func (t *OverlayTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return timer.BackgroundColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}
