package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "vimlearn/pkg/discord"
)

const (
	commandLang      = "lang"
	commandTranslate = "t"
)

// Commands lists the slash commands registered at startup.
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(h.locales.Available()))
	for _, l := range h.locales.Available() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s %s", l.Glyph, l.Name),
			Value: l.Code,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandLang,
			Description: "Show or change the Vim Learn language",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Locale code",
					Required:    false,
					Choices:     choices,
				},
			},
		},
		{
			Name:        commandTranslate,
			Description: "Look up a translation key",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "key",
					Description: "Dotted key, e.g. lessons.intro.title",
					Required:    true,
				},
			},
		},
	}
}

// HandleLang switches to the given locale, or shows the picker when no
// code was given.
func (h *Handler) HandleLang(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		respondLocalePicker(s, i.Interaction, h.locales.Available(), h.locales.Locale(), h.text.T("picker.title"))
		return
	}
	code := strings.TrimSpace(opts[0].StringValue())
	h.locales.SetLocale(context.Background(), code)
	respondEmbed(s, i.Interaction, pkgdiscord.BuildCatalogEmbed(h.text.T("nav.language"), h.locales.Available(), h.locales.Locale()))
}

// HandleTranslate replies with the resolved string for a key.
func (h *Handler) HandleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		return
	}
	respondEphemeral(s, i.Interaction, lookupReply(h.text, strings.TrimSpace(opts[0].StringValue())))
}

// lookupReply formats a lookup result; an unresolved key comes back as is.
func lookupReply(text interface{ T(string) string }, key string) string {
	value := text.T(key)
	if value == key {
		return fmt.Sprintf("❓ `%s`", key)
	}
	return fmt.Sprintf("`%s` → %s", key, value)
}
