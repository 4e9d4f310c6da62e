package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"vimlearn/internal/domain/entities"
)

func TestToKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want entities.KeyEvent
	}{
		{"lower rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, entities.KeyEvent{Key: "j"}},
		{"upper rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, entities.KeyEvent{Key: "G", Shift: true}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true}, entities.KeyEvent{Key: "k", Alt: true}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, entities.KeyEvent{Key: "d", Ctrl: true}},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, entities.KeyEvent{Key: "u", Ctrl: true}},
		{"named key", tea.KeyMsg{Type: tea.KeyEnter}, entities.KeyEvent{Key: "enter"}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, entities.KeyEvent{Key: "tab", Shift: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *toKeyEvent(tt.msg))
		})
	}
}
