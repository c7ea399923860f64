// Package connect описывает контракты между контроллером редактора
// и окружением: виджетом текста, диалогами и уведомлениями.
package connect

import (
	"image/color"

	"notepad/internal/model"
)

// TextSurface виджет, который хранит и редактирует текст
type TextSurface interface {
	Text() string
	SetText(text string)
	Cut()
	Copy()
	Paste()
	SetBackground(c color.Color)
}

// FileDialogs модальные диалоги выбора файла. ok == false означает отмену.
type FileDialogs interface {
	OpenFile(defaultExt string, filters []model.FileFilter) (path string, ok bool)
	SaveFile(defaultExt string, filters []model.FileFilter) (path string, ok bool)
}

// Confirmer модальный вопрос да/нет
type Confirmer interface {
	Confirm(title, message string) bool
}

// ColorPicker модальный выбор цвета
type ColorPicker interface {
	PickColor(title string) (color.Color, bool)
}

// Notifier показывает пользователю ошибки и сообщения, не прерывая работу
type Notifier interface {
	ShowError(err error)
	ShowInfo(title, message string)
}

// Window то, что контроллер меняет в окне приложения
type Window interface {
	SetTitle(title string)
	Quit()
}

// Translator переводит идентификаторы сообщений
type Translator interface {
	Translate(id string) string
}

// History получает пути, с которыми связывался документ
type History interface {
	Remember(path string)
}

// Watcher следит за изменениями связанного файла на диске
type Watcher interface {
	Watch(path string) error
	Stop()
}

// StatsViewer показывает статистику документа
type StatsViewer interface {
	ShowStats(name string, stats model.Stats, chartPNG []byte)
}
