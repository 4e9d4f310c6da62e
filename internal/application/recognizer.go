package application

import (
	"time"

	"vimlearn/internal/domain"
	"vimlearn/internal/domain/entities"
	"vimlearn/internal/ports/input"
	"vimlearn/internal/ports/output"
)

var _ input.KeyUseCase = (*Recognizer)(nil)

// SequenceState is the pending state of the gg gesture.
type SequenceState int

const (
	Idle SequenceState = iota
	PendingSecondG
)

func (s SequenceState) String() string {
	if s == PendingSecondG {
		return "pending-g"
	}
	return "idle"
}

// Recognizer turns Vim navigation keys into viewport scrolls. It is not
// safe for concurrent use; the host delivers keys one at a time.
type Recognizer struct {
	viewport output.Viewport
	focus    output.FocusProbe
	now      func() time.Time
	step     int
	timeout  time.Duration

	lastG  time.Time
	detach func()
}

// RecognizerOption customizes a Recognizer.
type RecognizerOption func(*Recognizer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RecognizerOption {
	return func(r *Recognizer) { r.now = now }
}

// WithStep sets the j/k distance in pixels.
func WithStep(px int) RecognizerOption {
	return func(r *Recognizer) {
		if px > 0 {
			r.step = px
		}
	}
}

// WithSequenceTimeout sets the gg window.
func WithSequenceTimeout(d time.Duration) RecognizerOption {
	return func(r *Recognizer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRecognizer(viewport output.Viewport, focus output.FocusProbe, opts ...RecognizerOption) *Recognizer {
	r := &Recognizer{
		viewport: viewport,
		focus:    focus,
		now:      time.Now,
		step:     domain.ScrollStep,
		timeout:  domain.SequenceTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State reports the pending-sequence slot. Expiry is lazy: a stale g
// stays pending until the next g observes the elapsed time.
func (r *Recognizer) State() SequenceState {
	if r.lastG.IsZero() {
		return Idle
	}
	return PendingSecondG
}

// HandleKey processes one keystroke. Keys aimed at an editable element and
// keys outside the navigation set are ignored.
func (r *Recognizer) HandleKey(ev *entities.KeyEvent) {
	if ev == nil {
		return
	}
	if r.focus != nil && r.focus.EditableFocused() {
		return
	}

	switch ev.Key {
	case "j":
		if ev.Plain() {
			r.viewport.ScrollBy(r.step, output.ScrollSmooth)
		}
	case "k":
		if ev.Plain() {
			r.viewport.ScrollBy(-r.step, output.ScrollSmooth)
		}
	case "G":
		r.viewport.ScrollTo(r.viewport.ScrollHeight(), output.ScrollSmooth)
	case "g":
		if !ev.Shift {
			r.pressG()
		}
	case "d":
		if ev.Ctrl {
			ev.PreventDefault()
			r.viewport.ScrollBy(r.viewport.InnerHeight()/2, output.ScrollSmooth)
		}
	case "u":
		if ev.Ctrl {
			ev.PreventDefault()
			r.viewport.ScrollBy(-r.viewport.InnerHeight()/2, output.ScrollSmooth)
		}
	}
}

func (r *Recognizer) pressG() {
	now := r.now()
	if !r.lastG.IsZero() && now.Sub(r.lastG) < r.timeout {
		r.viewport.ScrollTo(0, output.ScrollSmooth)
		r.lastG = time.Time{}
		return
	}
	r.lastG = now
}

// Attach subscribes to src. Attaching again first drops the previous
// subscription, so a surface never receives a key twice.
func (r *Recognizer) Attach(src output.KeySource) {
	r.Detach()
	r.detach = src.Subscribe(r.HandleKey)
}

// Detach removes the subscription, if any.
func (r *Recognizer) Detach() {
	if r.detach != nil {
		r.detach()
		r.detach = nil
	}
}

// Attached reports whether the recognizer is listening to a key source.
func (r *Recognizer) Attached() bool {
	return r.detach != nil
}
