package tui

import (
	"sync"

	"vimlearn/internal/ports/output"
)

var _ output.DocumentLanguage = (*Document)(nil)

// Document carries the language attribute of the reader screen. It is
// written by the locale store and read when rendering.
type Document struct {
	mu   sync.RWMutex
	lang string
}

func (d *Document) SetLanguage(code string) {
	d.mu.Lock()
	d.lang = code
	d.mu.Unlock()
}

func (d *Document) Language() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lang
}
