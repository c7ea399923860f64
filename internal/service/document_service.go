package service

import (
	"log/slog"
	"path/filepath"

	"notepad/internal/model"
	"notepad/internal/repository"
)

// DocumentService чтение и запись документов через репозиторий
type DocumentService struct {
	repo   *repository.TextRepository
	logger *slog.Logger
}

func NewDocumentService(repo *repository.TextRepository, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		repo:   repo,
		logger: logger.With("component", "documents"),
	}
}

// Read возвращает содержимое файла
func (s *DocumentService) Read(path string) (string, error) {
	if path == "" {
		return "", model.ErrNoPath
	}
	content, err := s.repo.Load(path)
	if err != nil {
		s.logger.Error("read failed", slog.String("path", path), slog.Any("err", err))
		return "", err
	}
	s.logger.Debug("read", slog.String("path", path), slog.Int("bytes", len(content)))
	return content, nil
}

// Write перезаписывает файл текстом документа
func (s *DocumentService) Write(path, content string) error {
	if path == "" {
		return model.ErrNoPath
	}
	if err := s.repo.Save(path, content); err != nil {
		s.logger.Error("write failed", slog.String("path", path), slog.Any("err", err))
		return err
	}
	s.logger.Debug("written", slog.String("path", path), slog.Int("bytes", len(content)))
	return nil
}

// WithDefaultExtension добавляет ext, если у имени файла нет расширения
func WithDefaultExtension(path, ext string) string {
	if path == "" || ext == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + ext
}
