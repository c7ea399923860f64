package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"notepad/internal/view"
	"notepad/pkg/config"
	"notepad/pkg/localization"
)

func main() {
	// Загружаем конфигурацию; при первом запуске файла нет
	cfgPath, err := config.Path()
	if err != nil {
		slog.Warn("config dir unavailable", slog.Any("err", err))
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil && !config.IsNotExist(err) {
		slog.Warn("config not loaded, using defaults", slog.String("path", cfgPath), slog.Any("err", err))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Инициализация локализации
	locale, err := localization.NewLocale(cfg.Language)
	if err != nil {
		logger.Warn("locale not loaded, falling back to english", slog.String("lang", cfg.Language), slog.Any("err", err))
		if locale, err = localization.NewLocale("en"); err != nil {
			logger.Error("locale init failed", slog.Any("err", err))
			os.Exit(1)
		}
	}

	myApp := app.NewWithID("io.github.notepad")

	// Создаем главное окно
	mainWindow := view.NewMainWindow(myApp, locale, cfg, cfgPath, logger)
	mainWindow.Show()
}
