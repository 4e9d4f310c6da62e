package application

import (
	"context"
	"log"
	"slices"
	"sync"

	"vimlearn/internal/domain"
	"vimlearn/internal/domain/entities"
	"vimlearn/internal/ports/input"
	"vimlearn/internal/ports/output"
	"vimlearn/pkg/eventbus"
)

var _ input.LocaleUseCase = (*LocaleStore)(nil)

// LocaleStore owns the current locale. It is shared by every UI surface
// of the process and is safe for concurrent use.
type LocaleStore struct {
	// writeMu serializes SetLocale so that the current locale, the stored
	// preference and the last notification always agree.
	writeMu sync.Mutex
	mu      sync.RWMutex
	current string
	catalog []entities.Locale
	prefs   output.PreferenceStore
	doc     output.DocumentLanguage
	changes *eventbus.Bus[string]
}

// NewLocaleStore builds the store from the persisted preference, or
// defaultCode when nothing usable has been stored. An unsupported
// defaultCode is replaced by the first catalog entry.
func NewLocaleStore(
	ctx context.Context,
	catalog []entities.Locale,
	prefs output.PreferenceStore,
	doc output.DocumentLanguage,
	defaultCode string,
) *LocaleStore {
	s := &LocaleStore{
		catalog: slices.Clone(catalog),
		prefs:   prefs,
		doc:     doc,
		changes: eventbus.New[string](),
	}

	s.current = defaultCode
	if !s.Supported(defaultCode) && len(s.catalog) > 0 {
		log.Printf("⚠️ locale: default %q not in catalog, using %q", defaultCode, s.catalog[0].Code)
		s.current = s.catalog[0].Code
	}
	stored, ok, err := prefs.Get(ctx, domain.LocalePreferenceKey)
	switch {
	case err != nil:
		log.Printf("⚠️ locale: read preference: %v", err)
	case ok && s.Supported(stored):
		s.current = stored
	case ok:
		log.Printf("⚠️ locale: ignoring unsupported stored locale %q", stored)
	}
	if doc != nil {
		doc.SetLanguage(s.current)
	}
	return s
}

// Locale returns the current locale code.
func (s *LocaleStore) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Available returns the locale catalog.
func (s *LocaleStore) Available() []entities.Locale {
	return slices.Clone(s.catalog)
}

// Supported reports whether code is in the catalog.
func (s *LocaleStore) Supported(code string) bool {
	return slices.ContainsFunc(s.catalog, func(l entities.Locale) bool { return l.Code == code })
}

// SetLocale switches to code, persists it and updates the document
// language. Unsupported codes are ignored without any write.
func (s *LocaleStore) SetLocale(ctx context.Context, code string) {
	if !s.Supported(code) {
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	changed := s.current != code
	s.current = code
	s.mu.Unlock()

	if err := s.prefs.Set(ctx, domain.LocalePreferenceKey, code); err != nil {
		log.Printf("⚠️ locale: persist %q: %v", code, err)
	}
	if s.doc != nil {
		s.doc.SetLanguage(code)
	}
	if changed {
		s.changes.Publish(code)
	}
}

// Subscribe registers fn for locale changes. Listeners run while the
// change is being applied and must not call SetLocale.
func (s *LocaleStore) Subscribe(fn func(code string)) func() {
	return s.changes.Subscribe(fn)
}
