package application

import (
	"fmt"
	"strings"

	"vimlearn/internal/domain/entities"
	"vimlearn/internal/ports/input"
	"vimlearn/internal/ports/output"
)

var _ input.TranslationUseCase = (*Resolver)(nil)

// Resolve looks up a dotted key in table[locale], then in table[fallback],
// and finally returns the key itself. It never fails.
func Resolve(table entities.Table, locale, fallback, key string) string {
	if key == "" {
		return key
	}
	segments := strings.Split(key, ".")
	if s, ok := walk(table[locale], segments); ok {
		return s
	}
	if s, ok := walk(table[fallback], segments); ok {
		return s
	}
	return key
}

// walk descends root along segments. Presence decides, not truthiness:
// an empty string, false or null leaf is found.
func walk(root map[string]any, segments []string) (string, bool) {
	var node any = root
	for _, seg := range segments {
		m, ok := node.(map[string]any)
		if !ok || m == nil {
			return "", false
		}
		next, ok := m[seg]
		if !ok {
			return "", false
		}
		node = next
	}

	switch v := node.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case map[string]any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

// Resolver binds Resolve to the current locale of a store.
type Resolver struct {
	locales    input.LocaleUseCase
	table      entities.Table
	fallback   string
	translator output.T
}

// NewResolver creates a Resolver. translator may be nil, in which case Tf
// degrades to T.
func NewResolver(locales input.LocaleUseCase, table entities.Table, fallback string, translator output.T) *Resolver {
	return &Resolver{
		locales:    locales,
		table:      table,
		fallback:   fallback,
		translator: translator,
	}
}

// T returns the string for key in the current locale.
func (r *Resolver) T(key string) string {
	return Resolve(r.table, r.locales.Locale(), r.fallback, key)
}

// Tf renders a templated or pluralized message for key.
func (r *Resolver) Tf(key string, data map[string]any) string {
	if r.translator == nil {
		return r.T(key)
	}
	return r.translator.T(r.locales.Locale(), key, data)
}
