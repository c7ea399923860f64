package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	// AppName префикс заголовка окна
	AppName = "Notepad"
	// AppVersion версия в окне "О программе"
	AppVersion = "1.0.0"
	// UntitledName отображаемое имя документа без файла
	UntitledName = "Untitled"
	// DefaultExtension расширение, подставляемое при сохранении
	DefaultExtension = ".txt"
)

var (
	ErrEmptyDocument = errors.New("document is empty")
	ErrNoPath        = errors.New("document has no associated path")
)

// FileFilter описывает фильтр файлового диалога
type FileFilter struct {
	Name    string
	Pattern string
}

// Extension возвращает расширение шаблона ("*.txt" -> ".txt"), пусто для "*.*"
func (f FileFilter) Extension() string {
	if f.Pattern == "*.*" || len(f.Pattern) < 2 {
		return ""
	}
	return f.Pattern[1:]
}

// TextFilters фильтры для Open и Save As
var TextFilters = []FileFilter{
	{Name: "Text files", Pattern: "*.txt"},
	{Name: "All files", Pattern: "*.*"},
}

// Document хранит состояние документа, открытого в редакторе.
// Сам текст живет в виджете, здесь только привязка к файлу.
type Document struct {
	ID           string
	FilePath     string
	Unsaved      bool
	LastModified time.Time
}

// NewDocument создает документ; пустой путь означает "Untitled"
func NewDocument(filePath string) *Document {
	return &Document{
		ID:           uuid.New().String(),
		FilePath:     filePath,
		LastModified: time.Now(),
	}
}

// HasPath сообщает, привязан ли документ к файлу
func (d *Document) HasPath() bool {
	return d.FilePath != ""
}

// DisplayName возвращает путь или "Untitled"
func (d *Document) DisplayName() string {
	if d.FilePath == "" {
		return UntitledName
	}
	return d.FilePath
}

// Title возвращает заголовок окна для документа
func (d *Document) Title() string {
	return AppName + " - " + d.DisplayName()
}

// PDFFilters фильтры для экспорта в PDF
var PDFFilters = []FileFilter{
	{Name: "PDF files", Pattern: "*.pdf"},
}
