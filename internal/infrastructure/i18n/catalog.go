package i18n

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"

	"vimlearn/internal/domain"
	"vimlearn/internal/domain/entities"
)

// DefaultCatalog is the list of selectable locales shown to users.
func DefaultCatalog() []entities.Locale {
	return []entities.Locale{
		{Code: "uk", Name: "Українська", Glyph: "🇺🇦"},
		{Code: "en", Name: "English", Glyph: "🇬🇧"},
		{Code: "de", Name: "Deutsch", Glyph: "🇩🇪"},
	}
}

// ValidateCatalog checks that catalog and table describe the same locales
// and that the fallback locale is one of them.
func ValidateCatalog(catalog []entities.Locale, table entities.Table, fallback string) error {
	codes := make([]string, 0, len(catalog))
	for _, l := range catalog {
		if _, err := language.Parse(l.Code); err != nil {
			return fmt.Errorf("%w: invalid locale code %q: %v", domain.ErrCatalogMismatch, l.Code, err)
		}
		if slices.Contains(codes, l.Code) {
			return fmt.Errorf("%w: duplicate locale %q", domain.ErrCatalogMismatch, l.Code)
		}
		if _, ok := table[l.Code]; !ok {
			return fmt.Errorf("%w: no table for %q", domain.ErrCatalogMismatch, l.Code)
		}
		codes = append(codes, l.Code)
	}

	tableCodes := table.Locales()
	slices.Sort(tableCodes)
	for _, code := range tableCodes {
		if !slices.Contains(codes, code) {
			return fmt.Errorf("%w: table %q has no catalog entry", domain.ErrCatalogMismatch, code)
		}
	}

	if !slices.Contains(codes, fallback) {
		return fmt.Errorf("%w: fallback locale %q not in catalog", domain.ErrCatalogMismatch, fallback)
	}
	return nil
}
