package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir         = "notepad"
	configFile     = "config.json"
	maxRecentFiles = 10
)

type AppConfig struct {
	Language   string `json:"language"`
	WindowSize struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"window_size"`
	RecentFiles []string `json:"recent_files"`
	LogLevel    string   `json:"log_level"`
}

// Default конфигурация при первом запуске
func Default() *AppConfig {
	cfg := &AppConfig{Language: "en", LogLevel: "info"}
	cfg.WindowSize.Width = 600
	cfg.WindowSize.Height = 400
	return cfg
}

// Path путь к файлу конфигурации в каталоге пользователя
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// LoadConfig читает конфигурацию; при ошибке возвращает значения по умолчанию и ошибку
func LoadConfig(configPath string) (*AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), err
	}
	if cfg.WindowSize.Width <= 0 || cfg.WindowSize.Height <= 0 {
		def := Default()
		cfg.WindowSize = def.WindowSize
	}
	return cfg, nil
}

func SaveConfig(configPath string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// AddRecent поднимает путь в начало списка недавних файлов
func (c *AppConfig) AddRecent(path string) {
	recent := make([]string, 0, maxRecentFiles)
	recent = append(recent, path)
	for _, p := range c.RecentFiles {
		if p != path && len(recent) < maxRecentFiles {
			recent = append(recent, p)
		}
	}
	c.RecentFiles = recent
}

// SlogLevel уровень логирования из конфигурации
func (c *AppConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsNotExist сообщает, что файла конфигурации еще нет
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
