package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"vimlearn/internal/domain/entities"
	pkgdiscord "vimlearn/pkg/discord"
)

const selectLocaleID = "select_locale"

func localeOptions(locales []entities.Locale, current string) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(locales))
	for _, l := range locales {
		options = append(options, discordgo.SelectMenuOption{
			Label:   l.Glyph + " " + l.Name,
			Value:   l.Code,
			Default: l.Code == current,
		})
	}
	return options
}

func respondLocalePicker(s *discordgo.Session, i *discordgo.Interaction, locales []entities.Locale, current, title string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: title,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    selectLocaleID,
							Placeholder: title,
							Options:     localeOptions(locales, current),
						},
					},
				},
			},
		},
	})
}

// HandleSelectLocale applies the locale chosen in the picker.
func (h *Handler) HandleSelectLocale(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	h.locales.SetLocale(context.Background(), values[0])
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildCatalogEmbed(h.text.T("nav.language"), h.locales.Available(), h.locales.Locale())},
			Components: []discordgo.MessageComponent{},
		},
	})
}
