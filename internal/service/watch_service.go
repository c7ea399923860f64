package service

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher следит за одним файлом. Наблюдаем каталог, а не сам файл,
// чтобы переживать сохранение через переименование.
type FileWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	path     string
	onChange func(path string)
	logger   *slog.Logger
}

// NewFileWatcher создает наблюдатель; onChange вызывается из горутины наблюдателя
func NewFileWatcher(onChange func(path string), logger *slog.Logger) *FileWatcher {
	return &FileWatcher{
		onChange: onChange,
		logger:   logger.With("component", "watcher"),
	}
}

// Watch переключает наблюдение на path
func (fw *FileWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		fw.watcher = w
		go fw.loop(w)
	}

	dir := filepath.Dir(abs)
	if dir != fw.dir {
		if fw.dir != "" {
			_ = fw.watcher.Remove(fw.dir)
		}
		if err := fw.watcher.Add(dir); err != nil {
			fw.dir = ""
			return err
		}
		fw.dir = dir
	}
	fw.path = abs
	fw.logger.Debug("watching", slog.String("path", abs))
	return nil
}

// Stop прекращает наблюдение и освобождает ресурсы
func (fw *FileWatcher) Stop() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.watcher != nil {
		fw.watcher.Close()
		fw.watcher = nil
	}
	fw.dir = ""
	fw.path = ""
}

func (fw *FileWatcher) loop(w *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.mu.Lock()
			path := fw.path
			fw.mu.Unlock()
			if path != "" && filepath.Clean(event.Name) == path {
				fw.onChange(path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watch error", slog.Any("err", err))
		}
	}
}
