package repository

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"notepad/internal/model"
)

// TextRepository читает и пишет текстовые файлы без преобразований
type TextRepository struct {
	perm  os.FileMode
	write func(w io.Writer, s string) (int, error)
}

// NewTextRepository создает новый экземпляр репозитория
func NewTextRepository() *TextRepository {
	return &TextRepository{perm: 0644, write: io.WriteString}
}

// Load читает файл целиком
func (r *TextRepository) Load(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", model.NewIOError("open", filePath, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", model.NewIOError("read", filePath, err)
	}
	return string(data), nil
}

// Save создает или заменяет файл. Текст пишется во временный файл рядом
// с целевым и переименовывается поверх него, при ошибке прежний файл цел.
func (r *TextRepository) Save(filePath, content string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return model.NewIOError("write", filePath, err)
	}
	tmp := tmpFile.Name()
	defer os.Remove(tmp)

	if _, err := r.write(tmpFile, content); err != nil {
		tmpFile.Close()
		return model.NewIOError("write", filePath, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return model.NewIOError("write", filePath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return model.NewIOError("close", filePath, err)
	}
	if err := os.Chmod(tmp, r.filePerm(filePath)); err != nil {
		return model.NewIOError("write", filePath, err)
	}

	err = os.Rename(tmp, filePath)
	if err != nil && runtime.GOOS == "windows" {
		// Windows не всегда разрешает переименование поверх существующего файла
		if rmErr := os.Remove(filePath); rmErr == nil || os.IsNotExist(rmErr) {
			err = os.Rename(tmp, filePath)
		}
	}
	if err != nil {
		return model.NewIOError("rename", filePath, err)
	}
	return nil
}

// filePerm права существующего файла, для нового r.perm
func (r *TextRepository) filePerm(filePath string) os.FileMode {
	if info, err := os.Stat(filePath); err == nil {
		return info.Mode().Perm()
	}
	return r.perm
}
