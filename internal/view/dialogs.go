package view

import (
	"image/color"
	"log/slog"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"notepad/internal/model"
	"notepad/internal/service"
)

// fyneDialogs показывает диалоги fyne и ждет ответа.
// Вызывается только из цикла команд, никогда из UI-потока.
type fyneDialogs struct {
	window fyne.Window
	logger *slog.Logger
}

func (d *fyneDialogs) OpenFile(defaultExt string, filters []model.FileFilter) (string, bool) {
	result := make(chan string, 1)
	fyne.Do(func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				d.logger.Error("open dialog error", slog.Any("err", err))
				dialog.ShowError(err, d.window)
				result <- ""
				return
			}
			if reader == nil {
				result <- ""
				return
			}
			reader.Close()
			result <- uriToPath(reader.URI())
		}, d.window)
		if filter := fileFilter(filters); filter != nil {
			fd.SetFilter(filter)
		}
		fd.Show()
	})

	path := <-result
	return path, path != ""
}

// SaveFile возвращает выбранный путь. Новому имени без расширения
// добавляется defaultExt, существующий файл возвращается как выбран.
func (d *fyneDialogs) SaveFile(defaultExt string, filters []model.FileFilter) (string, bool) {
	type choice struct {
		path    string
		created bool
	}
	result := make(chan choice, 1)
	fyne.Do(func() {
		// fyne закрывает диалог до создания нового файла и после перезаписи существующего
		closed := false
		fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				d.logger.Error("save dialog error", slog.Any("err", err))
				dialog.ShowError(err, d.window)
				result <- choice{}
				return
			}
			if writer == nil {
				result <- choice{}
				return
			}
			writer.Close()
			result <- choice{path: uriToPath(writer.URI()), created: closed}
		}, d.window)
		fd.SetOnClosed(func() { closed = true })
		if filter := fileFilter(filters); filter != nil {
			fd.SetFilter(filter)
		}
		fd.SetFileName(model.UntitledName + defaultExt)
		fd.Show()
	})

	c := <-result
	if c.path == "" {
		return "", false
	}
	return resolveSavePath(c.path, defaultExt, c.created), true
}

// resolveSavePath добавляет defaultExt к имени без расширения, если файл
// только что создан диалогом: пустая заготовка удаляется. Существующий файл
// и уже занятое имя с расширением оставляют путь как есть.
func resolveSavePath(path, defaultExt string, created bool) string {
	withExt := service.WithDefaultExtension(path, defaultExt)
	if !created || withExt == path {
		return path
	}
	if _, err := os.Stat(withExt); !os.IsNotExist(err) {
		return path
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() != 0 {
		return path
	}
	if err := os.Remove(path); err != nil {
		return path
	}
	return withExt
}

func (d *fyneDialogs) Confirm(title, message string) bool {
	answer := make(chan bool, 1)
	fyne.Do(func() {
		dialog.NewConfirm(title, message, func(ok bool) {
			answer <- ok
		}, d.window).Show()
	})
	return <-answer
}

func (d *fyneDialogs) PickColor(title string) (color.Color, bool) {
	picked := make(chan color.Color, 1)
	closed := make(chan struct{})
	var once sync.Once

	fyne.Do(func() {
		picker := dialog.NewColorPicker(title, "", func(c color.Color) {
			picked <- c
		}, d.window)
		picker.Advanced = true
		picker.SetOnClosed(func() {
			once.Do(func() { close(closed) })
		})
		picker.Show()
	})

	<-closed
	// цвет передается после закрытия диалога в том же обработчике UI
	fyne.DoAndWait(func() {})
	select {
	case c := <-picked:
		return c, c != nil
	default:
		return nil, false
	}
}

func (d *fyneDialogs) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, d.window)
	})
}

func (d *fyneDialogs) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, d.window)
	})
}

// fileFilter фильтр диалога fyne. Диалог поддерживает один фильтр,
// поэтому набор с "*.*" показывает все файлы.
func fileFilter(filters []model.FileFilter) storage.FileFilter {
	var exts []string
	for _, f := range filters {
		ext := f.Extension()
		if ext == "" {
			return nil
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return nil
	}
	return storage.NewExtensionFileFilter(exts)
}

func uriToPath(uri fyne.URI) string {
	if uri == nil {
		return ""
	}
	if uri.Scheme() == "file" {
		return uri.Path()
	}
	return uri.String()
}
