package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vimlearn/internal/domain/entities"
)

// KeyMap holds the reader's own shortcuts. Navigation keys belong to the
// recognizer and are not listed here.
type KeyMap struct {
	// ForceQuit works in every mode, Quit only on the reader.
	ForceQuit key.Binding
	Quit      key.Binding
	Lookup    key.Binding
	Picker    key.Binding
	Close     key.Binding
	Select    key.Binding
	Up        key.Binding
	Down      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
		Lookup:    key.NewBinding(key.WithKeys(":")),
		Picker:    key.NewBinding(key.WithKeys("L")),
		Close:     key.NewBinding(key.WithKeys("esc")),
		Select:    key.NewBinding(key.WithKeys("enter")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
	}
}

// viewportKeyMap is the viewport's native handling, which runs for keys
// the recognizer did not prevent. j/k are left to the recognizer.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Down:         key.NewBinding(key.WithKeys("down")),
		Up:           key.NewBinding(key.WithKeys("up")),
	}
}

// toKeyEvent converts a terminal key message into a host-neutral event.
func toKeyEvent(msg tea.KeyMsg) *entities.KeyEvent {
	ev := &entities.KeyEvent{Alt: msg.Alt}
	if msg.Type == tea.KeyRunes {
		ev.Key = string(msg.Runes)
		if len(msg.Runes) == 1 && unicode.IsUpper(msg.Runes[0]) {
			ev.Shift = true
		}
		return ev
	}

	name := strings.TrimPrefix(msg.String(), "alt+")
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		ev.Ctrl = true
		name = rest
	}
	if rest, ok := strings.CutPrefix(name, "shift+"); ok {
		ev.Shift = true
		name = rest
	}
	ev.Key = name
	return ev
}
