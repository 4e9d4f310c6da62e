package output

import "vimlearn/internal/domain/entities"

// ScrollBehavior is the animation hint passed with every scroll request.
type ScrollBehavior int

const (
	ScrollInstant ScrollBehavior = iota
	ScrollSmooth
)

// Viewport is the scroll sink driven by the key recognizer. Distances are
// in pixels; requests are fire-and-forget.
type Viewport interface {
	// ScrollBy scrolls vertically relative to the current position.
	ScrollBy(dy int, behavior ScrollBehavior)
	// ScrollTo scrolls to an absolute vertical position.
	ScrollTo(top int, behavior ScrollBehavior)
	// InnerHeight is the visible height.
	InnerHeight() int
	// ScrollHeight is the full document height.
	ScrollHeight() int
}

// FocusProbe tells whether an editable element (text field, text area,
// content-editable region) currently owns keyboard focus.
type FocusProbe interface {
	EditableFocused() bool
}

// KeySource is a global stream of keyboard events.
type KeySource interface {
	// Subscribe registers handler and returns a function that removes it.
	Subscribe(handler func(*entities.KeyEvent)) func()
}
