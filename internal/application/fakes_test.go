package application

import (
	"context"
	"errors"

	"vimlearn/internal/domain/entities"
	"vimlearn/internal/ports/output"
)

type fakePrefs struct {
	values map[string]string
	writes int
	getErr error
	setErr error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{values: map[string]string{}}
}

func (p *fakePrefs) Get(_ context.Context, name string) (string, bool, error) {
	if p.getErr != nil {
		return "", false, p.getErr
	}
	v, ok := p.values[name]
	return v, ok, nil
}

func (p *fakePrefs) Set(_ context.Context, name, value string) error {
	p.writes++
	if p.setErr != nil {
		return p.setErr
	}
	p.values[name] = value
	return nil
}

type fakeDoc struct {
	lang  string
	calls int
}

func (d *fakeDoc) SetLanguage(code string) {
	d.lang = code
	d.calls++
}

type scrollCall struct {
	kind     string
	px       int
	behavior output.ScrollBehavior
}

type fakeViewport struct {
	calls  []scrollCall
	inner  int
	scroll int
}

func (v *fakeViewport) ScrollBy(dy int, b output.ScrollBehavior) {
	v.calls = append(v.calls, scrollCall{"by", dy, b})
}

func (v *fakeViewport) ScrollTo(top int, b output.ScrollBehavior) {
	v.calls = append(v.calls, scrollCall{"to", top, b})
}

func (v *fakeViewport) InnerHeight() int  { return v.inner }
func (v *fakeViewport) ScrollHeight() int { return v.scroll }

type fakeFocus struct{ editable bool }

func (f *fakeFocus) EditableFocused() bool { return f.editable }

type fakeSource struct {
	handlers map[int]func(*entities.KeyEvent)
	next     int
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: map[int]func(*entities.KeyEvent){}}
}

func (s *fakeSource) Subscribe(h func(*entities.KeyEvent)) func() {
	id := s.next
	s.next++
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}

func (s *fakeSource) emit(ev *entities.KeyEvent) {
	for _, h := range s.handlers {
		h(ev)
	}
}

var errBoom = errors.New("boom")

var testCatalog = []entities.Locale{
	{Code: "uk", Name: "Українська", Glyph: "🇺🇦"},
	{Code: "en", Name: "English", Glyph: "🇬🇧"},
	{Code: "de", Name: "Deutsch", Glyph: "🇩🇪"},
}
