// Package i18n provides the message catalog for user-facing strings.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/bnema/schemer/internal/application/port"
)

// Message keys used outside the scheme list.
const (
	KeyPickerTitle = "Choose a color scheme"
	KeyEffective   = "Effective"
	KeySaved       = "Saved"
	KeyReset       = "Stored preference removed"
)

var supported = []language.Tag{
	language.English, // first entry is the matcher fallback
	language.French,
	language.German,
	language.Spanish,
}

var translations = map[language.Tag]map[string]string{
	language.French: {
		"System":       "Système",
		"Day":          "Jour",
		"Night":        "Nuit",
		KeyPickerTitle: "Choisir un jeu de couleurs",
		KeyEffective:   "Effectif",
		KeySaved:       "Enregistré",
		KeyReset:       "Préférence enregistrée supprimée",
	},
	language.German: {
		"System":       "System",
		"Day":          "Tag",
		"Night":        "Nacht",
		KeyPickerTitle: "Farbschema wählen",
		KeyEffective:   "Wirksam",
		KeySaved:       "Gespeichert",
		KeyReset:       "Gespeicherte Einstellung entfernt",
	},
	language.Spanish: {
		"System":       "Sistema",
		"Day":          "Día",
		"Night":        "Noche",
		KeyPickerTitle: "Elegir un esquema de colores",
		KeyEffective:   "Efectivo",
		KeySaved:       "Guardado",
		KeyReset:       "Preferencia guardada eliminada",
	},
}

// Translator implements port.Translator on top of an x/text catalog.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

var _ port.Translator = (*Translator)(nil)

// NewTranslator picks the best supported language for locale.
// An empty locale is read from LC_ALL, LC_MESSAGES or LANG.
func NewTranslator(locale string) *Translator {
	if locale == "" {
		locale = localeFromEnv()
	}
	tag := matchLocale(locale)

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(newCatalog())),
	}
}

// Tr implements port.Translator.
func (t *Translator) Tr(key string) string {
	return t.printer.Sprintf(message.Key(key, key))
}

// Language returns the matched language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// SetString only fails on malformed messages; these are literals.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

func matchLocale(locale string) language.Tag {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return language.English
	}
	_, idx, _ := language.NewMatcher(supported).Match(tag)
	return supported[idx]
}

// normalizeLocale turns POSIX locales like "fr_FR.UTF-8@euro" into BCP 47.
func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return "en"
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func localeFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
