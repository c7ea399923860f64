package view

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/controller"
	"notepad/internal/model"
	"notepad/internal/repository"
	"notepad/internal/service"
	"notepad/pkg/config"
	"notepad/pkg/localization"
)

// Идентификаторы команд меню и панели инструментов
const (
	cmdNew        = "new"
	cmdOpen       = "open"
	cmdSave       = "save"
	cmdSaveAs     = "save_as"
	cmdExportPDF  = "export_pdf"
	cmdPrint      = "print"
	cmdExit       = "exit"
	cmdCut        = "cut"
	cmdCopy       = "copy"
	cmdPaste      = "paste"
	cmdBackground = "background"
	cmdStatistics = "statistics"

	cmdExternalChange = "external_change"
)

const commandQueueSize = 16

type command struct {
	name string
	run  func()
}

type MainWindow struct {
	app        fyne.App
	window     fyne.Window
	surface    *entrySurface
	controller *controller.EditorController
	watcher    *service.FileWatcher
	locale     *localization.Locale
	cfg        *config.AppConfig
	cfgPath    string
	handlers   map[string]func()
	commands   chan command
	toolbar    *fyne.Container
	logger     *slog.Logger
}

func NewMainWindow(app fyne.App, locale *localization.Locale, cfg *config.AppConfig, cfgPath string, logger *slog.Logger) *MainWindow {
	w := app.NewWindow(model.AppName)

	mw := &MainWindow{
		app:      app,
		window:   w,
		locale:   locale,
		cfg:      cfg,
		cfgPath:  cfgPath,
		commands: make(chan command, commandQueueSize),
		logger:   logger.With("component", "view"),
	}

	mw.surface = newEntrySurface(w, newSurfaceTheme(theme.DefaultTheme()))
	mw.watcher = service.NewFileWatcher(func(path string) {
		mw.enqueue(cmdExternalChange, func() { mw.controller.ExternalChange(path) })
	}, logger)

	dialogs := &fyneDialogs{window: w, logger: mw.logger}
	docs := service.NewDocumentService(repository.NewTextRepository(), logger)
	mw.controller = controller.NewEditorController(docs, controller.Options{
		Surface:    mw.surface,
		Files:      dialogs,
		Confirmer:  dialogs,
		Colors:     dialogs,
		Notifier:   dialogs,
		Window:     &appWindow{app: app, window: w, onQuit: mw.saveWindowSize},
		Translator: locale,
		History:    mw,
		Watcher:    mw.watcher,
		Stats:      mw,
	}, logger)
	mw.handlers = commandTable(mw.controller)
	w.SetTitle(mw.controller.Title())

	return mw
}

// commandTable связывает идентификаторы команд с операциями контроллера
func commandTable(c *controller.EditorController) map[string]func() {
	return map[string]func(){
		cmdNew:        c.New,
		cmdOpen:       c.Open,
		cmdSave:       c.Save,
		cmdSaveAs:     c.SaveAs,
		cmdExportPDF:  c.ExportPDF,
		cmdPrint:      c.Print,
		cmdExit:       c.Exit,
		cmdCut:        c.Cut,
		cmdCopy:       c.Copy,
		cmdPaste:      c.Paste,
		cmdBackground: c.ChangeBackgroundColor,
		cmdStatistics: c.Statistics,
	}
}

// Show строит окно и запускает цикл событий
func (mw *MainWindow) Show() {
	go mw.runCommands()

	mw.window.SetMainMenu(mw.setupMenu())
	mw.toolbar = mw.setupToolbar()
	mw.setupShortcuts()
	mw.window.SetCloseIntercept(func() { mw.dispatch(cmdExit) })

	mainContent := container.NewBorder(
		mw.toolbar,           // Верх - панель инструментов
		nil,                  // Низ - ничего
		nil,                  // Лево - ничего
		nil,                  // Право - ничего
		mw.surface.Content(), // Центр - текст
	)

	mw.window.SetContent(mainContent)
	mw.window.Resize(fyne.NewSize(float32(mw.cfg.WindowSize.Width), float32(mw.cfg.WindowSize.Height)))
	mw.window.Canvas().Focus(mw.surface.entry)
	mw.window.ShowAndRun()
}

// runCommands выполняет команды по одной, каждая до завершения
func (mw *MainWindow) runCommands() {
	for cmd := range mw.commands {
		mw.logger.Debug("command", slog.String("name", cmd.name))
		cmd.run()
	}
}

func (mw *MainWindow) dispatch(name string) {
	run, ok := mw.handlers[name]
	if !ok {
		mw.logger.Warn("unknown command", slog.String("name", name))
		return
	}
	mw.enqueue(name, run)
}

// enqueue не блокирует UI-поток. При полной очереди выход и внешние
// изменения ждут места в отдельной горутине, остальные команды теряются.
func (mw *MainWindow) enqueue(name string, run func()) {
	cmd := command{name: name, run: run}
	select {
	case mw.commands <- cmd:
	default:
		if name == cmdExit || name == cmdExternalChange {
			mw.logger.Warn("command queue full, waiting", slog.String("name", name))
			go func() { mw.commands <- cmd }()
			return
		}
		mw.logger.Warn("command dropped, queue full", slog.String("name", name))
	}
}

func (mw *MainWindow) action(name string) func() {
	return func() { mw.dispatch(name) }
}

func (mw *MainWindow) setupMenu() *fyne.MainMenu {
	t := mw.locale.Translate

	recent := fyne.NewMenuItem(t("MenuOpenRecent"), nil)
	recent.ChildMenu = mw.recentMenu()

	// иначе fyne добавит в меню File собственный Quit без подтверждения
	exit := fyne.NewMenuItem(t("MenuExit"), mw.action(cmdExit))
	exit.IsQuit = true

	fileMenu := fyne.NewMenu(t("MenuFile"),
		fyne.NewMenuItem(t("MenuNew"), mw.action(cmdNew)),
		fyne.NewMenuItem(t("MenuOpen"), mw.action(cmdOpen)),
		recent,
		fyne.NewMenuItem(t("MenuSave"), mw.action(cmdSave)),
		fyne.NewMenuItem(t("MenuSaveAs"), mw.action(cmdSaveAs)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t("MenuExportPDF"), mw.action(cmdExportPDF)),
		fyne.NewMenuItem(t("MenuPrint"), mw.action(cmdPrint)),
		fyne.NewMenuItemSeparator(),
		exit,
	)

	editMenu := fyne.NewMenu(t("MenuEdit"),
		fyne.NewMenuItem(t("MenuCut"), mw.action(cmdCut)),
		fyne.NewMenuItem(t("MenuCopy"), mw.action(cmdCopy)),
		fyne.NewMenuItem(t("MenuPaste"), mw.action(cmdPaste)),
	)

	viewMenu := fyne.NewMenu(t("MenuView"),
		fyne.NewMenuItem(t("MenuStatistics"), mw.action(cmdStatistics)),
	)

	colorMenu := fyne.NewMenu(t("MenuColor"),
		fyne.NewMenuItem(t("MenuChangeBackground"), mw.action(cmdBackground)),
	)

	langItems := make([]*fyne.MenuItem, 0, len(localization.Languages))
	for _, l := range localization.Languages {
		tag := l.Tag
		item := fyne.NewMenuItem(l.Name, func() { mw.changeLanguage(tag) })
		item.Checked = mw.locale.Language() == tag
		langItems = append(langItems, item)
	}
	langMenu := fyne.NewMenu(t("MenuLanguage"), langItems...)

	helpMenu := fyne.NewMenu(t("MenuHelp"),
		fyne.NewMenuItem(t("MenuAbout"), mw.showAbout),
	)

	return fyne.NewMainMenu(
		fileMenu,
		editMenu,
		viewMenu,
		colorMenu,
		langMenu,
		helpMenu,
	)
}

// showAbout вызывается из меню, то есть в UI-потоке
func (mw *MainWindow) showAbout() {
	t := mw.locale.Translate
	dialog.ShowCustom(
		t("About"),
		t("Close"),
		container.NewVBox(
			widget.NewLabel(aboutText(t)),
			widget.NewLabel("© 2025"),
		),
		mw.window,
	)
}

func aboutText(t func(string) string) string {
	return fmt.Sprintf("%s\n%s\n%s %s", model.AppName, t("AboutText"), t("Version"), model.AppVersion)
}

func (mw *MainWindow) recentMenu() *fyne.Menu {
	if len(mw.cfg.RecentFiles) == 0 {
		empty := fyne.NewMenuItem(mw.locale.Translate("NoRecentFiles"), nil)
		empty.Disabled = true
		return fyne.NewMenu("", empty)
	}

	items := make([]*fyne.MenuItem, 0, len(mw.cfg.RecentFiles))
	for _, p := range mw.cfg.RecentFiles {
		path := p
		items = append(items, fyne.NewMenuItem(path, func() {
			mw.enqueue("open_recent", func() { mw.controller.OpenPath(path) })
		}))
	}
	return fyne.NewMenu("", items...)
}

func (mw *MainWindow) setupToolbar() *fyne.Container {
	t := mw.locale.Translate
	return container.NewHBox(
		widget.NewButtonWithIcon(t("MenuNew"), theme.DocumentCreateIcon(), mw.action(cmdNew)),
		widget.NewButtonWithIcon(t("MenuOpen"), theme.FolderOpenIcon(), mw.action(cmdOpen)),
		widget.NewButtonWithIcon(t("MenuSave"), theme.DocumentSaveIcon(), mw.action(cmdSave)),
		widget.NewButtonWithIcon(t("MenuCut"), theme.ContentCutIcon(), mw.action(cmdCut)),
		widget.NewButtonWithIcon(t("MenuCopy"), theme.ContentCopyIcon(), mw.action(cmdCopy)),
		widget.NewButtonWithIcon(t("MenuPaste"), theme.ContentPasteIcon(), mw.action(cmdPaste)),
	)
}

// setupShortcuts Ctrl+N, Ctrl+O, Ctrl+S; вырезание и вставку поле ввода обрабатывает само
func (mw *MainWindow) setupShortcuts() {
	bind := func(key fyne.KeyName, name string) {
		mw.window.Canvas().AddShortcut(
			&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault},
			func(fyne.Shortcut) { mw.dispatch(name) },
		)
	}
	bind(fyne.KeyN, cmdNew)
	bind(fyne.KeyO, cmdOpen)
	bind(fyne.KeyS, cmdSave)
}

func (mw *MainWindow) changeLanguage(lang string) {
	if err := mw.locale.SetLanguage(lang); err != nil {
		mw.logger.Error("change language failed", slog.String("lang", lang), slog.Any("err", err))
		return
	}
	mw.cfg.Language = lang
	mw.saveConfig()

	// Обновляем меню и панель инструментов
	mw.window.SetMainMenu(mw.setupMenu())
	fresh := mw.setupToolbar()
	mw.toolbar.Objects = fresh.Objects
	mw.toolbar.Refresh()
}

// Remember добавляет путь в недавние файлы. Вызывается из цикла команд.
func (mw *MainWindow) Remember(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fyne.Do(func() {
		mw.cfg.AddRecent(path)
		mw.saveConfig()
		mw.window.SetMainMenu(mw.setupMenu())
	})
}

// ShowStats открывает окно со статистикой и графиком частых слов
func (mw *MainWindow) ShowStats(name string, stats model.Stats, chartPNG []byte) {
	t := mw.locale.Translate
	summary := fmt.Sprintf("%s: %d   %s: %d   %s: %d",
		t("Lines"), stats.Lines,
		t("Words"), stats.Words,
		t("Characters"), stats.Chars)

	fyne.Do(func() {
		img := canvas.NewImageFromReader(bytes.NewReader(chartPNG), "stats.png")
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(640, 300))

		statsWindow := mw.app.NewWindow(t("Statistics") + " - " + name)
		statsWindow.SetContent(container.NewBorder(widget.NewLabel(summary), nil, nil, nil, img))
		statsWindow.Resize(fyne.NewSize(800, 520))
		statsWindow.Show()
	})
}

func (mw *MainWindow) saveWindowSize() {
	size := mw.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.cfg.WindowSize.Width = int(size.Width)
		mw.cfg.WindowSize.Height = int(size.Height)
	}
	mw.saveConfig()
}

func (mw *MainWindow) saveConfig() {
	if mw.cfgPath == "" {
		return
	}
	if err := config.SaveConfig(mw.cfgPath, mw.cfg); err != nil {
		mw.logger.Warn("save config failed", slog.String("path", mw.cfgPath), slog.Any("err", err))
	}
}
