package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vimlearn/internal/application"
	"vimlearn/internal/domain/entities"
	"vimlearn/internal/infrastructure/prefs"
	pkgdiscord "vimlearn/pkg/discord"
)

var catalog = []entities.Locale{
	{Code: "uk", Name: "Українська", Glyph: "🇺🇦"},
	{Code: "en", Name: "English", Glyph: "🇬🇧"},
}

func newTestHandler() (*Handler, *application.LocaleStore) {
	store := application.NewLocaleStore(context.Background(), catalog, prefs.NewMemoryStore(), nil, "uk")
	table := entities.Table{
		"uk": {"app": map[string]any{"subtitle": "посібник"}},
		"en": {"app": map[string]any{"subtitle": "primer"}},
	}
	return NewHandler(store, application.NewResolver(store, table, "uk", nil)), store
}

func TestHandler_Commands(t *testing.T) {
	h, _ := newTestHandler()

	cmds := h.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, commandLang, cmds[0].Name)
	require.Len(t, cmds[0].Options, 1)
	choices := cmds[0].Options[0].Choices
	require.Len(t, choices, 2)
	assert.Equal(t, "uk", choices[0].Value)
	assert.Equal(t, "🇬🇧 English", choices[1].Name)
	assert.Equal(t, commandTranslate, cmds[1].Name)
	assert.True(t, cmds[1].Options[0].Required)
}

func TestHandler_PresenceFollowsLocale(t *testing.T) {
	h, store := newTestHandler()
	assert.Equal(t, "📖 посібник", h.presenceText())

	store.SetLocale(context.Background(), "en")
	assert.Equal(t, "📖 primer", h.presenceText())
}

func TestLookupReply(t *testing.T) {
	h, _ := newTestHandler()

	assert.Equal(t, "`app.subtitle` → посібник", lookupReply(h.text, "app.subtitle"))
	assert.Equal(t, "❓ `app.missing`", lookupReply(h.text, "app.missing"))
}

func TestLocaleOptions(t *testing.T) {
	opts := localeOptions(catalog, "en")

	require.Len(t, opts, 2)
	assert.False(t, opts[0].Default)
	assert.True(t, opts[1].Default)
	assert.Equal(t, "🇺🇦 Українська", opts[0].Label)
}

func TestBuildCatalogEmbed(t *testing.T) {
	embed := pkgdiscord.BuildCatalogEmbed("Мова", catalog, "uk")

	assert.Equal(t, "Мова", embed.Title)
	assert.Equal(t, "✅ 🇺🇦 Українська `uk`\n▫️ 🇬🇧 English `en`", embed.Description)
}
