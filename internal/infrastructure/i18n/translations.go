package i18n

import (
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"vimlearn/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer. It serves
// templated and pluralized messages; plain lookups go through the table walk.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "uk"). It loads every active.*.toml / active.*.yaml file of fsys.
func NewTranslator(fsys fs.FS, defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Ukrainian
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	files, err := tableFiles(fsys)
	if err != nil {
		log.Printf("i18n: list tables: %v", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, f.name); err != nil {
			log.Printf("i18n: failed to load %s: %v", f.name, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself. A "Count" entry in data selects the
// plural form.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	cfg := &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	}
	if count, ok := data["Count"]; ok {
		cfg.PluralCount = count
	}

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(cfg)
	if err != nil {
		log.Printf("i18n: localize (key=%s, locales=%v): %v", key, languages, err)
		if msg == "" {
			return key
		}
	}
	return msg
}
