package i18n

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var embeddedLocales embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations carga los mensajes embebidos y, si localesDir no está vacío,
// los archivos active.*.toml de ese directorio, que pisan a los embebidos.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("language is required")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	embedded, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, entry := range embedded {
		data, err := embeddedLocales.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("error reading embedded locale %s: %w", entry.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("error parsing embedded locale %s: %w", entry.Name(), err)
		}
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
