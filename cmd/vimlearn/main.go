package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"vimlearn/internal/adapters/tui"
	"vimlearn/internal/application"
	"vimlearn/internal/bootstrap"
	"vimlearn/internal/config"
	"vimlearn/internal/ports/input"
	"vimlearn/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Keep log output off the alternate screen.
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
		if f, err := tea.LogToFile(cfg.LogFile, "vimlearn"); err == nil {
			defer f.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	doc := &tui.Document{}
	rt, err := bootstrap.Build(ctx, cfg, doc)
	if err != nil {
		log.Fatalf("❌ startup: %v", err)
	}
	defer rt.Close()

	app := tui.NewApp(rt.Locales, rt.Resolver, doc, func(vp output.Viewport, focus output.FocusProbe) input.KeyUseCase {
		return application.NewRecognizer(vp, focus,
			application.WithStep(cfg.ScrollStep),
			application.WithSequenceTimeout(cfg.SequenceTimeout),
		)
	}, cfg.LineHeight)

	if err := tui.Run(ctx, app); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
