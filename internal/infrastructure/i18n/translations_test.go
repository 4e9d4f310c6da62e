package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator(Embedded(), "uk")

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{"plain message", "en", "nav.home", nil, "Home"},
		{"uk plural one", "uk", "progress.lessons", map[string]any{"Count": 1}, "1 урок"},
		{"uk plural few", "uk", "progress.lessons", map[string]any{"Count": 3}, "3 уроки"},
		{"uk plural many", "uk", "progress.lessons", map[string]any{"Count": 5}, "5 уроків"},
		{"en plural other", "en", "progress.lessons", map[string]any{"Count": 6}, "6 lessons"},
		{"de plural one", "de", "progress.lessons", map[string]any{"Count": 1}, "1 Lektion"},
		{"missing in locale falls back", "de", "lookup.prompt", nil, "ключ> "},
		{"missing everywhere returns key", "en", "nope.nothing", nil, "nope.nothing"},
		{"empty key", "en", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.data))
		})
	}
}
