package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vimlearn/internal/domain"
	"vimlearn/internal/domain/entities"
)

func TestValidateCatalog_EmbeddedTablesMatch(t *testing.T) {
	table, err := LoadTables(Embedded())
	require.NoError(t, err)

	assert.NoError(t, ValidateCatalog(DefaultCatalog(), table, domain.FallbackLocale))
}

func TestValidateCatalog_Mismatch(t *testing.T) {
	table := entities.Table{"uk": {}, "en": {}}

	tests := []struct {
		name     string
		catalog  []entities.Locale
		fallback string
		msg      string
	}{
		{"catalog entry without table", []entities.Locale{{Code: "uk"}, {Code: "en"}, {Code: "de"}}, "uk", "no table"},
		{"table without catalog entry", []entities.Locale{{Code: "uk"}}, "uk", "no catalog entry"},
		{"fallback outside catalog", []entities.Locale{{Code: "uk"}, {Code: "en"}}, "de", "fallback"},
		{"invalid code", []entities.Locale{{Code: "not a tag"}}, "uk", "invalid locale code"},
		{"duplicate code", []entities.Locale{{Code: "uk"}, {Code: "uk"}, {Code: "en"}}, "uk", "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalog(tt.catalog, table, tt.fallback)
			assert.ErrorIs(t, err, domain.ErrCatalogMismatch)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}
