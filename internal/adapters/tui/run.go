package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the reader until the user quits or ctx is cancelled.
func Run(ctx context.Context, app *App) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send from a goroutine: SetLocale may run inside Update, and Send
	// blocks until the event loop reads the message.
	unsubscribe := app.locales.Subscribe(func(code string) {
		go p.Send(LocaleChangedMsg{Code: code})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
