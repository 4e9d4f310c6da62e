package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vimlearn/internal/domain/entities"
	"vimlearn/internal/ports/input"
	"vimlearn/internal/ports/output"
	"vimlearn/pkg/eventbus"
)

// LessonIDs is the reading order of lessons in the translation table.
var LessonIDs = []string{"intro", "motions", "scrolling", "jumps", "search", "editing"}

// LocaleChangedMsg is sent when the locale store switched language.
type LocaleChangedMsg struct {
	Code string
}

// RecognizerFactory builds the key recognizer for a scroll port and focus probe.
type RecognizerFactory func(output.Viewport, output.FocusProbe) input.KeyUseCase

// App is the reader surface: a scrollable page of translated lessons.
type App struct {
	locales    input.LocaleUseCase
	text       input.TranslationUseCase
	doc        *Document
	keymap     KeyMap
	keys       *eventbus.Bus[*entities.KeyEvent]
	recognizer input.KeyUseCase

	viewport viewport.Model
	scroller *Scroller
	lookup   textinput.Model

	pickerOpen   bool
	pickerCursor int

	status string
	width  int
	height int
	ready  bool
}

func NewApp(
	locales input.LocaleUseCase,
	text input.TranslationUseCase,
	doc *Document,
	newRecognizer RecognizerFactory,
	lineHeight int,
) *App {
	a := &App{
		locales:  locales,
		text:     text,
		doc:      doc,
		keymap:   DefaultKeyMap(),
		keys:     eventbus.New[*entities.KeyEvent](),
		viewport: viewport.New(0, 0),
		lookup:   textinput.New(),
	}
	a.viewport.KeyMap = viewportKeyMap()
	a.scroller = NewScroller(&a.viewport, lineHeight)
	a.recognizer = newRecognizer(a.scroller, a)
	return a
}

// EditableFocused implements output.FocusProbe: the lookup field is the
// only editable element of the surface.
func (a *App) EditableFocused() bool {
	return a.lookup.Focused()
}

func (a *App) Init() tea.Cmd {
	a.recognizer.Attach(a.keys)
	return tea.SetWindowTitle(a.title())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = max(1, msg.Height-lipgloss.Height(a.headerView())-lipgloss.Height(a.footerView()))
		a.ready = true
		a.refresh()
		return a, nil

	case LocaleChangedMsg:
		a.refresh()
		return a, tea.SetWindowTitle(a.title())

	case scrollFrameMsg:
		return a, a.scroller.frame()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// handleKey publishes the key on the global stream first, then runs the
// surface's default handling unless a listener prevented it.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := toKeyEvent(msg)
	a.keys.Publish(ev)
	if ev.DefaultPrevented() {
		return a, a.scroller.Animate()
	}

	switch {
	case key.Matches(msg, a.keymap.ForceQuit):
		return a, a.quit()
	case a.pickerOpen:
		return a, a.updatePicker(msg)
	case a.lookup.Focused():
		return a, a.updateLookup(msg)
	case key.Matches(msg, a.keymap.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keymap.Lookup):
		a.lookup.Reset()
		a.lookup.Prompt = a.text.T("lookup.prompt")
		a.lookup.Placeholder = a.text.T("lookup.placeholder")
		return a, a.lookup.Focus()
	case key.Matches(msg, a.keymap.Picker):
		a.openPicker()
		return a, nil
	}

	before := a.viewport.YOffset
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	if a.viewport.YOffset != before {
		a.scroller.Sync()
	}
	return a, tea.Batch(cmd, a.scroller.Animate())
}

func (a *App) quit() tea.Cmd {
	a.pickerOpen = false
	a.lookup.Blur()
	a.recognizer.Detach()
	return tea.Quit
}

func (a *App) updateLookup(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Close):
		a.lookup.Blur()
		a.lookup.Reset()
		return nil
	case key.Matches(msg, a.keymap.Select):
		k := strings.TrimSpace(a.lookup.Value())
		a.status = fmt.Sprintf("%s → %q", k, a.text.T(k))
		a.lookup.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.lookup, cmd = a.lookup.Update(msg)
	return cmd
}

// openPicker deactivates the reader surface while the picker is shown.
func (a *App) openPicker() {
	a.pickerOpen = true
	a.pickerCursor = 0
	for i, l := range a.locales.Available() {
		if l.Code == a.locales.Locale() {
			a.pickerCursor = i
		}
	}
	a.recognizer.Detach()
}

func (a *App) closePicker() {
	a.pickerOpen = false
	a.recognizer.Attach(a.keys)
}

func (a *App) updatePicker(msg tea.KeyMsg) tea.Cmd {
	available := a.locales.Available()
	switch {
	case key.Matches(msg, a.keymap.Close), key.Matches(msg, a.keymap.Picker):
		a.closePicker()
	case key.Matches(msg, a.keymap.Up):
		a.pickerCursor = max(0, a.pickerCursor-1)
	case key.Matches(msg, a.keymap.Down):
		a.pickerCursor = min(len(available)-1, a.pickerCursor+1)
	case key.Matches(msg, a.keymap.Select):
		if a.pickerCursor < len(available) {
			a.locales.SetLocale(context.Background(), available[a.pickerCursor].Code)
		}
		a.closePicker()
		a.refresh()
		return tea.SetWindowTitle(a.title())
	}
	return nil
}

// refresh re-renders the page in the current locale.
func (a *App) refresh() {
	if !a.ready {
		return
	}
	width := max(20, a.width-2)
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(a.text.T("app.subtitle")))
	b.WriteString("\n\n")
	for _, id := range LessonIDs {
		b.WriteString(lessonStyle.Render(a.text.T("lessons." + id + ".title")))
		b.WriteString("\n")
		b.WriteString(body.Render(a.text.T("lessons." + id + ".body")))
		b.WriteString("\n\n")
	}
	a.viewport.SetContent(b.String())
	a.scroller.Sync()
}

func (a *App) title() string {
	return fmt.Sprintf("%s [%s]", a.text.T("app.title"), a.doc.Language())
}

func (a *App) glyph() string {
	for _, l := range a.locales.Available() {
		if l.Code == a.locales.Locale() {
			return l.Glyph
		}
	}
	return ""
}

func (a *App) headerView() string {
	return headerStyle.Render(fmt.Sprintf("%s %s  %s", a.glyph(), a.text.T("app.title"), a.doc.Language()))
}

func (a *App) footerView() string {
	help := []string{
		a.text.T("help.scroll"),
		a.text.T("help.half_page"),
		a.text.T("help.jumps"),
		a.text.T("help.picker"),
		a.text.T("help.lookup"),
	}
	line := footerStyle.Render(strings.Join(help, " • "))

	status := a.text.Tf("progress.lessons", map[string]any{"Count": len(LessonIDs)})
	if a.status != "" {
		status = a.status
	}
	if a.lookup.Focused() {
		status = a.lookup.View()
	}
	return statusStyle.Render(status) + "\n" + line
}

func (a *App) pickerView() string {
	var b strings.Builder
	b.WriteString(lessonStyle.Render(a.text.T("picker.title")))
	b.WriteString("\n\n")
	for i, l := range a.locales.Available() {
		row := fmt.Sprintf("%s  %s (%s)", l.Glyph, l.Name, l.Code)
		if i == a.pickerCursor {
			b.WriteString(selectedStyle.Render("› " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + footerStyle.Render(a.text.T("help.select")+" • "+a.text.T("help.close")))
	return pickerStyle.Render(b.String())
}

func (a *App) View() string {
	if !a.ready {
		return ""
	}
	if a.pickerOpen {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.pickerView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.headerView(), a.viewport.View(), a.footerView())
}
