package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"vimlearn/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	locales input.LocaleUseCase
	text    input.TranslationUseCase
}

// NewHandler creates a Handler.
func NewHandler(locales input.LocaleUseCase, text input.TranslationUseCase) *Handler {
	return &Handler{
		locales: locales,
		text:    text,
	}
}

// presenceText is shown as the bot's status; it follows the locale.
func (h *Handler) presenceText() string {
	return "📖 " + h.text.T("app.subtitle")
}

func (h *Handler) updatePresence(s *discordgo.Session) {
	if err := s.UpdateGameStatus(0, h.presenceText()); err != nil {
		log.Printf("⚠️ update presence: %v", err)
	}
}
