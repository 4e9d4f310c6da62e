package main

import (
	"context"
	"log"
	"os"

	"vimlearn/internal/adapters/discord"
	"vimlearn/internal/bootstrap"
	"vimlearn/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	rt, err := bootstrap.Build(context.Background(), cfg, nil)
	if err != nil {
		log.Fatalf("❌ startup: %v", err)
	}
	defer rt.Close()

	bot, err := discord.NewBot(cfg, rt.Locales, rt.Resolver)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ bot: %v", err)
		os.Exit(1)
	}
}
