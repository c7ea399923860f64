package view

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// entrySurface поле ввода fyne как поверхность текста контроллера.
// Обращения к виджету выполняются в UI-потоке через fyne.DoAndWait.
type entrySurface struct {
	entry    *widget.Entry
	theme    *surfaceTheme
	override *container.ThemeOverride
	window   fyne.Window
}

func newEntrySurface(window fyne.Window, th *surfaceTheme) *entrySurface {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord

	return &entrySurface{
		entry:    entry,
		theme:    th,
		override: container.NewThemeOverride(entry, th),
		window:   window,
	}
}

// Content объект для размещения в окне
func (s *entrySurface) Content() fyne.CanvasObject {
	return s.override
}

func (s *entrySurface) Text() string {
	var text string
	fyne.DoAndWait(func() {
		text = s.entry.Text
	})
	return text
}

func (s *entrySurface) SetText(text string) {
	fyne.DoAndWait(func() {
		s.entry.SetText(text)
		s.entry.CursorRow, s.entry.CursorColumn = 0, 0
		s.entry.Refresh()
	})
}

// Cut, Copy и Paste повторяют сочетания клавиш виджета; без выделения Cut ничего не делает
func (s *entrySurface) Cut() {
	fyne.DoAndWait(func() {
		s.entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: s.window.Clipboard()})
	})
}

func (s *entrySurface) Copy() {
	fyne.DoAndWait(func() {
		s.entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: s.window.Clipboard()})
	})
}

func (s *entrySurface) Paste() {
	fyne.DoAndWait(func() {
		s.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: s.window.Clipboard()})
	})
}

func (s *entrySurface) SetBackground(c color.Color) {
	fyne.DoAndWait(func() {
		s.theme.background = c
		s.override.Refresh()
	})
}

// appWindow окно и приложение для контроллера
type appWindow struct {
	app    fyne.App
	window fyne.Window
	onQuit func()
}

func (w *appWindow) SetTitle(title string) {
	fyne.Do(func() {
		w.window.SetTitle(title)
	})
}

func (w *appWindow) Quit() {
	fyne.Do(func() {
		if w.onQuit != nil {
			w.onQuit()
		}
		w.app.Quit()
	})
}
