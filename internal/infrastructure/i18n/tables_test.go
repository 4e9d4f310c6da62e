package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vimlearn/internal/application"
	"vimlearn/internal/domain"
)

func TestLoadTables_Embedded(t *testing.T) {
	table, err := LoadTables(Embedded())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"uk", "en", "de"}, table.Locales())
	assert.Equal(t, "Головна", application.Resolve(table, "uk", "uk", "nav.home"))
	assert.Equal(t, "Home", application.Resolve(table, "en", "uk", "nav.home"))
	assert.Equal(t, "Startseite", application.Resolve(table, "de", "uk", "nav.home"))
	// de.yaml has no lookup section.
	assert.Equal(t, "ключ> ", application.Resolve(table, "de", "uk", "lookup.prompt"))
	// en.toml has no editing lesson.
	assert.Equal(t, "Редагування", application.Resolve(table, "en", "uk", "lessons.editing.title"))
}

func TestLoadTables_FormatsAndFiltering(t *testing.T) {
	fsys := fstest.MapFS{
		"active.uk.toml": {Data: []byte("[a]\nb = \"toml\"\nflag = false\n")},
		"active.en.yml":  {Data: []byte("a:\n  b: yml\n")},
		"README.md":      {Data: []byte("ignored")},
		"other.de.toml":  {Data: []byte("ignored = true")},
	}

	table, err := LoadTables(fsys)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"uk", "en"}, table.Locales())
	assert.Equal(t, "toml", application.Resolve(table, "uk", "uk", "a.b"))
	assert.Equal(t, "yml", application.Resolve(table, "en", "uk", "a.b"))
	assert.Equal(t, "false", application.Resolve(table, "en", "uk", "a.flag"))
}

func TestLoadTables_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr error
	}{
		{"empty", fstest.MapFS{}, domain.ErrNoTables},
		{"unknown format", fstest.MapFS{"active.uk.json": {Data: []byte("{}")}}, domain.ErrUnknownTableFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTables(tt.fsys)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadTables_MalformedAndDuplicate(t *testing.T) {
	_, err := LoadTables(fstest.MapFS{"active.uk.toml": {Data: []byte("[a\n")}})
	assert.Error(t, err)

	_, err = LoadTables(fstest.MapFS{
		"active.uk.toml": {Data: []byte("a = \"x\"\n")},
		"active.uk.yaml": {Data: []byte("a: y\n")},
	})
	assert.ErrorContains(t, err, "defined twice")
}
