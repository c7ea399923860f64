package view

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"notepad/internal/model"
)

func TestSurfaceThemeOverridesInputBackground(t *testing.T) {
	base := theme.DefaultTheme()
	th := newSurfaceTheme(base)

	assert.Equal(t, base.Color(theme.ColorNameInputBackground, theme.VariantLight),
		th.Color(theme.ColorNameInputBackground, theme.VariantLight))

	pink := color.NRGBA{R: 255, G: 192, B: 203, A: 255}
	th.background = pink

	assert.Equal(t, pink, th.Color(theme.ColorNameInputBackground, theme.VariantDark))
	assert.Equal(t, base.Color(theme.ColorNameForeground, theme.VariantDark),
		th.Color(theme.ColorNameForeground, theme.VariantDark))
}

func TestFileFilter(t *testing.T) {
	assert.Nil(t, fileFilter(model.TextFilters))
	assert.Nil(t, fileFilter(nil))

	filter := fileFilter(model.PDFFilters)
	if assert.NotNil(t, filter) {
		assert.True(t, filter.Matches(storage.NewFileURI("/tmp/out.pdf")))
		assert.False(t, filter.Matches(storage.NewFileURI("/tmp/out.txt")))
	}
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "", uriToPath(nil))
	assert.Equal(t, "/tmp/a.txt", uriToPath(storage.NewFileURI("/tmp/a.txt")))

	var uri fyne.URI = storage.NewFileURI("/tmp/dir/b.txt")
	assert.Equal(t, "/tmp/dir/b.txt", uriToPath(uri))
}
