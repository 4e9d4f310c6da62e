package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vimlearn/internal/ports/output"
)

var _ output.Viewport = (*Scroller)(nil)

const frameInterval = 16 * time.Millisecond

type scrollFrameMsg struct{}

// Scroller adapts a bubbles viewport to the pixel-based scroll port. One
// row is lineHeight pixels. Smooth requests ease toward a target row over
// several frames.
type Scroller struct {
	vp         *viewport.Model
	lineHeight int

	target    int
	animating bool
	ticking   bool
}

func NewScroller(vp *viewport.Model, lineHeight int) *Scroller {
	if lineHeight <= 0 {
		lineHeight = 1
	}
	return &Scroller{vp: vp, lineHeight: lineHeight}
}

func (s *Scroller) ScrollBy(dy int, behavior output.ScrollBehavior) {
	s.scrollToRow(s.position()+s.rows(dy), behavior)
}

func (s *Scroller) ScrollTo(top int, behavior output.ScrollBehavior) {
	s.scrollToRow(s.rows(top), behavior)
}

func (s *Scroller) InnerHeight() int {
	return s.vp.Height * s.lineHeight
}

func (s *Scroller) ScrollHeight() int {
	return s.vp.TotalLineCount() * s.lineHeight
}

// Animating reports whether a smooth scroll is still in flight.
func (s *Scroller) Animating() bool {
	return s.animating
}

// Animate returns the next frame tick when an animation needs one.
func (s *Scroller) Animate() tea.Cmd {
	if !s.animating || s.ticking {
		return nil
	}
	s.ticking = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return scrollFrameMsg{} })
}

// frame advances one animation step and schedules the next one.
func (s *Scroller) frame() tea.Cmd {
	s.ticking = false
	if !s.animating {
		return nil
	}
	diff := s.target - s.vp.YOffset
	step := diff / 3
	if step == 0 {
		step = sign(diff)
	}
	before := s.vp.YOffset
	s.vp.SetYOffset(before + step)
	if s.vp.YOffset == s.target || s.vp.YOffset == before {
		s.animating = false
		return nil
	}
	return s.Animate()
}

// Sync drops a pending animation after the content or size changed.
func (s *Scroller) Sync() {
	s.animating = false
	s.target = s.vp.YOffset
}

// position is where the viewport is heading, so that repeated keys
// accumulate during an animation.
func (s *Scroller) position() int {
	if s.animating {
		return s.target
	}
	return s.vp.YOffset
}

func (s *Scroller) rows(px int) int {
	r := px / s.lineHeight
	if r == 0 && px != 0 {
		r = sign(px)
	}
	return r
}

func (s *Scroller) maxOffset() int {
	return max(0, s.vp.TotalLineCount()-s.vp.Height)
}

func (s *Scroller) scrollToRow(row int, behavior output.ScrollBehavior) {
	row = min(max(row, 0), s.maxOffset())
	s.target = row
	if behavior == output.ScrollInstant {
		s.vp.SetYOffset(row)
		s.animating = false
		return
	}
	s.animating = row != s.vp.YOffset
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
