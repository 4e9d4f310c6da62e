package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"vimlearn/internal/domain/entities"
)

const embedColor = 0x019733

// BuildCatalogEmbed lists the available locales and marks the current one.
func BuildCatalogEmbed(title string, locales []entities.Locale, current string) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, l := range locales {
		marker := "▫️"
		if l.Code == current {
			marker = "✅"
		}
		b.WriteString(fmt.Sprintf("%s %s %s `%s`\n", marker, l.Glyph, l.Name, l.Code))
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.TrimSuffix(b.String(), "\n"),
		Color:       embedColor,
	}
}
