package localization

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Languages поддерживаемые языки в порядке меню
var Languages = []struct {
	Tag  string
	Name string
}{
	{Tag: "en", Name: "English"},
	{Tag: "ru", Name: "Русский"},
}

// Locale безопасен для вызова из нескольких горутин
type Locale struct {
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
}

// NewLocale загружает встроенные переводы и выбирает язык
func NewLocale(lang string) (*Locale, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, l := range Languages {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", l.Tag+".json")); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l.Tag, err)
		}
	}

	loc := &Locale{bundle: bundle}
	if err := loc.SetLanguage(lang); err != nil {
		return nil, err
	}
	return loc, nil
}

// SetLanguage переключает язык перевода
func (l *Locale) SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", lang, err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lang = tag.String()
	l.localizer = i18n.NewLocalizer(l.bundle, l.lang)
	return nil
}

// Language текущий язык
func (l *Locale) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

func (l *Locale) Translate(key string) string {
	l.mu.RLock()
	localizer := l.localizer
	l.mu.RUnlock()

	// при отсутствии перевода go-i18n может вернуть текст языка по умолчанию вместе с ошибкой
	translation, _ := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if translation == "" {
		return key
	}
	return translation
}
