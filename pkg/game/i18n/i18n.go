// Package i18n loads the embedded UI string catalogues into gotext so the
// rest of the game can call gotext.Get with constant keys.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

const domain = "default"

// ErrUnknownLanguage is returned by Init for a language with no catalogue.
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*/default.po
var catalogues embed.FS

// Languages lists the languages with an embedded catalogue
func Languages() []string {
	entries, err := fs.ReadDir(catalogues, "locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// Init parses the catalogue for lang and installs it as gotext's global storage.
func Init(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogues.ReadFile("locales/" + lang + "/" + domain + ".po")
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	locale := gotext.NewLocale("locales", lang)
	locale.AddTranslator(domain, po)
	gotext.SetStorage(locale)
	return nil
}
