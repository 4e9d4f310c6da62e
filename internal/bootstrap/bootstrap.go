// Package bootstrap wires configuration, translation tables, the
// preference backend and the locale store shared by every entry point.
package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"vimlearn/internal/application"
	"vimlearn/internal/config"
	"vimlearn/internal/domain"
	"vimlearn/internal/domain/entities"
	"vimlearn/internal/infrastructure/database"
	"vimlearn/internal/infrastructure/i18n"
	"vimlearn/internal/infrastructure/prefs"
	"vimlearn/internal/ports/output"
)

// Runtime holds the wired core.
type Runtime struct {
	Config   *config.Config
	Locales  *application.LocaleStore
	Resolver *application.Resolver

	closers []func()
}

// Close releases backend resources.
func (r *Runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// Build loads the tables, checks them against the catalog, opens the
// preference backend and restores the persisted locale.
func Build(ctx context.Context, cfg *config.Config, doc output.DocumentLanguage) (*Runtime, error) {
	var tablesFS fs.FS = i18n.Embedded()
	if cfg.TablesDir != "" {
		tablesFS = os.DirFS(cfg.TablesDir)
	}

	table, err := i18n.LoadTables(tablesFS)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	catalog := i18n.DefaultCatalog()
	if err := i18n.ValidateCatalog(catalog, table, cfg.FallbackLocale); err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(catalog, func(l entities.Locale) bool { return l.Code == cfg.DefaultLocale }) {
		return nil, fmt.Errorf("%w: default locale %q not in catalog", domain.ErrCatalogMismatch, cfg.DefaultLocale)
	}

	rt := &Runtime{Config: cfg}

	store, err := rt.openPreferences(ctx)
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.Locales = application.NewLocaleStore(ctx, catalog, store, doc, cfg.DefaultLocale)
	rt.Resolver = application.NewResolver(
		rt.Locales,
		table,
		cfg.FallbackLocale,
		i18n.NewTranslator(tablesFS, cfg.FallbackLocale),
	)
	return rt, nil
}

func (r *Runtime) openPreferences(ctx context.Context) (output.PreferenceStore, error) {
	switch r.Config.PrefsBackend {
	case config.BackendMemory:
		return prefs.NewMemoryStore(), nil
	case config.BackendPostgres:
		if err := database.RunMigrations(r.Config.DatabaseURL); err != nil {
			return nil, fmt.Errorf("migrate preferences: %w", err)
		}
		pool, err := database.NewPool(ctx, r.Config.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect preferences: %w", err)
		}
		r.closers = append(r.closers, pool.Close)
		return database.NewPreferenceRepository(pool), nil
	default:
		return prefs.NewFileStore(r.Config.PrefsFile), nil
	}
}
