package view

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// surfaceTheme подменяет цвет фона поля ввода выбранным пользователем
type surfaceTheme struct {
	fyne.Theme
	background color.Color
}

func newSurfaceTheme(base fyne.Theme) *surfaceTheme {
	return &surfaceTheme{Theme: base}
}

func (t *surfaceTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameInputBackground && t.background != nil {
		return t.background
	}
	return t.Theme.Color(name, variant)
}
