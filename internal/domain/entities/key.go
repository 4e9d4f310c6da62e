package entities

// KeyEvent is a single keystroke as delivered by a host surface.
// Key is the produced character ("j", "G") or a named key ("enter").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool

	defaultPrevented bool
}

// PreventDefault asks the host not to run its own handling of this key.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Plain reports whether no command modifier (ctrl, alt, meta) is held.
func (e *KeyEvent) Plain() bool {
	return !e.Ctrl && !e.Alt && !e.Meta
}
