package controller

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"notepad/internal/connect"
	"notepad/internal/model"
	"notepad/internal/service"
)

// Количество слов на графике статистики
const topWords = 10

var timeNow = time.Now

// Options окружение контроллера. History, Watcher, Stats и Translator
// необязательны.
type Options struct {
	Surface    connect.TextSurface
	Files      connect.FileDialogs
	Confirmer  connect.Confirmer
	Colors     connect.ColorPicker
	Notifier   connect.Notifier
	Window     connect.Window
	Translator connect.Translator
	History    connect.History
	Watcher    connect.Watcher
	Stats      connect.StatsViewer
	// Printer отправляет PDF на печать, по умолчанию service.PrintFile
	Printer func(path string) error
}

// EditorController сессия редактора: связь текста с файлом и заголовок окна.
// Все методы вызываются из одного цикла команд.
type EditorController struct {
	docs      *service.DocumentService
	opts      Options
	doc       *model.Document
	savedText string
	// содержимое диска, от перезагрузки которого пользователь отказался
	declined    string
	hasDeclined bool
	logger      *slog.Logger
}

func NewEditorController(docs *service.DocumentService, opts Options, logger *slog.Logger) *EditorController {
	if opts.Printer == nil {
		opts.Printer = service.PrintFile
	}
	return &EditorController{
		docs:   docs,
		opts:   opts,
		doc:    model.NewDocument(""),
		logger: logger.With("component", "controller"),
	}
}

// Title заголовок окна для текущего состояния
func (c *EditorController) Title() string {
	return c.doc.Title()
}

// Document текущий документ
func (c *EditorController) Document() *model.Document {
	return c.doc
}

// Unsaved сообщает, изменился ли текст после New, Open или Save
func (c *EditorController) Unsaved() bool {
	c.doc.Unsaved = c.opts.Surface.Text() != c.savedText
	return c.doc.Unsaved
}

// New очищает документ после подтверждения
func (c *EditorController) New() {
	if !c.opts.Confirmer.Confirm(c.t("DialogWarning"), c.t("ConfirmDiscard")) {
		return
	}
	c.opts.Surface.SetText("")
	c.setSaved("")
	c.doc = model.NewDocument("")
	if c.opts.Watcher != nil {
		c.opts.Watcher.Stop()
	}
	c.updateTitle()
	c.logger.Info("new document", slog.String("id", c.doc.ID))
}

// Open спрашивает файл и загружает его
func (c *EditorController) Open() {
	path, ok := c.opts.Files.OpenFile(model.DefaultExtension, model.TextFilters)
	if !ok {
		return
	}
	c.OpenPath(path)
}

// OpenPath загружает файл без диалога. При ошибке прежний текст остается.
func (c *EditorController) OpenPath(path string) {
	content, err := c.docs.Read(path)
	if err != nil {
		c.opts.Notifier.ShowError(err)
		return
	}
	c.opts.Surface.SetText(content)
	c.setSaved(content)
	c.associate(path)
	c.logger.Info("opened", slog.String("path", path))
}

// Save пишет текст в связанный файл, без файла работает как SaveAs
func (c *EditorController) Save() {
	if !c.doc.HasPath() {
		c.SaveAs()
		return
	}
	text := c.opts.Surface.Text()
	if err := c.docs.Write(c.doc.FilePath, text); err != nil {
		c.opts.Notifier.ShowError(err)
		return
	}
	c.setSaved(text)
	c.doc.LastModified = timeNow()
	c.logger.Info("saved", slog.String("path", c.doc.FilePath))
}

// SaveAs спрашивает путь, пишет текст и связывает документ с файлом
func (c *EditorController) SaveAs() {
	path, ok := c.opts.Files.SaveFile(model.DefaultExtension, model.TextFilters)
	if !ok {
		return
	}

	text := c.opts.Surface.Text()
	if err := c.docs.Write(path, text); err != nil {
		c.opts.Notifier.ShowError(err)
		return
	}
	c.setSaved(text)
	c.associate(path)
	c.logger.Info("saved as", slog.String("path", path))
}

// Exit завершает приложение после подтверждения
func (c *EditorController) Exit() {
	if !c.opts.Confirmer.Confirm(c.t("DialogQuit"), c.t("ConfirmQuit")) {
		return
	}
	c.logger.Info("exit", slog.Bool("unsaved", c.Unsaved()))
	if c.opts.Watcher != nil {
		c.opts.Watcher.Stop()
	}
	c.opts.Window.Quit()
}

func (c *EditorController) Cut() {
	c.opts.Surface.Cut()
}

func (c *EditorController) Copy() {
	c.opts.Surface.Copy()
}

func (c *EditorController) Paste() {
	c.opts.Surface.Paste()
}

// ChangeBackgroundColor меняет фон текста, цвет не сохраняется
func (c *EditorController) ChangeBackgroundColor() {
	col, ok := c.opts.Colors.PickColor(c.t("ChooseBackground"))
	if !ok {
		return
	}
	c.opts.Surface.SetBackground(col)
}

// ExportPDF сохраняет текст документа в PDF
func (c *EditorController) ExportPDF() {
	path, ok := c.opts.Files.SaveFile(".pdf", model.PDFFilters)
	if !ok {
		return
	}

	if err := service.ExportPDF(path, c.doc.DisplayName(), c.opts.Surface.Text()); err != nil {
		c.logger.Error("export failed", slog.String("path", path), slog.Any("err", err))
		c.opts.Notifier.ShowError(err)
		return
	}
	c.opts.Notifier.ShowInfo(c.t("Notification"), c.t("PDFExported"))
}

// Print печатает документ через временный PDF
func (c *EditorController) Print() {
	tmp, err := service.ExportTempPDF(c.doc.DisplayName(), c.opts.Surface.Text())
	if err != nil {
		c.opts.Notifier.ShowError(err)
		return
	}
	defer os.Remove(tmp)

	if err := c.opts.Printer(tmp); err != nil {
		c.logger.Error("print failed", slog.Any("err", err))
		c.opts.Notifier.ShowError(err)
		return
	}
	c.opts.Notifier.ShowInfo(c.t("Notification"), c.t("PrintSent"))
}

// Statistics считает статистику и строит график частых слов
func (c *EditorController) Statistics() {
	stats := service.ComputeStats(c.opts.Surface.Text(), topWords)
	if len(stats.TopWords) == 0 {
		c.opts.Notifier.ShowInfo(c.t("Statistics"), c.t("EmptyDocument"))
		return
	}
	png, err := service.GenerateWordChart(stats, c.t("TopWords"))
	if err != nil {
		c.opts.Notifier.ShowError(err)
		return
	}
	if c.opts.Stats != nil {
		c.opts.Stats.ShowStats(c.doc.DisplayName(), stats, png)
	}
}

// ExternalChange вызывается, когда связанный файл изменился на диске.
// Содержимое последнего сохранения (наше же сохранение) и уже отклоненное
// содержимое игнорируются.
func (c *EditorController) ExternalChange(path string) {
	if !c.doc.HasPath() || !samePath(path, c.doc.FilePath) {
		return
	}
	content, err := c.docs.Read(c.doc.FilePath)
	if err != nil {
		return
	}
	if content == c.savedText || (c.hasDeclined && content == c.declined) {
		return
	}
	if content == c.opts.Surface.Text() {
		c.setSaved(content)
		return
	}

	msg := c.t("ConfirmReload")
	if c.Unsaved() {
		msg = c.t("ConfirmReloadUnsaved")
	}
	if !c.opts.Confirmer.Confirm(c.t("DialogFileChanged"), msg) {
		c.declined, c.hasDeclined = content, true
		return
	}
	c.opts.Surface.SetText(content)
	c.setSaved(content)
	c.logger.Info("reloaded", slog.String("path", c.doc.FilePath))
}

// setSaved запоминает текст, совпадающий с файлом
func (c *EditorController) setSaved(text string) {
	c.savedText = text
	c.declined, c.hasDeclined = "", false
}

func (c *EditorController) associate(path string) {
	c.doc.FilePath = path
	c.doc.LastModified = timeNow()
	c.updateTitle()

	if c.opts.History != nil {
		c.opts.History.Remember(path)
	}
	if c.opts.Watcher != nil {
		if err := c.opts.Watcher.Watch(path); err != nil {
			c.logger.Warn("watch failed", slog.String("path", path), slog.Any("err", err))
		}
	}
}

func (c *EditorController) updateTitle() {
	c.opts.Window.SetTitle(c.doc.Title())
}

func (c *EditorController) t(id string) string {
	if c.opts.Translator == nil {
		return id
	}
	return c.opts.Translator.Translate(id)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
