package discord

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Response is the single reply produced for an Invocation.
// Concrete types are *TextResponse and *EmbedResponse.
type Response interface {
	InteractionResponse() *discordgo.InteractionResponse
}

// TextResponse is a plain text reply.
type TextResponse struct {
	Body      string
	Ephemeral bool
}

var _ Response = (*TextResponse)(nil)

// InteractionResponse converts the reply to the payload Discord expects.
func (r *TextResponse) InteractionResponse() *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: r.Body,
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// EmbedResponse is a reply with a single embed.
type EmbedResponse struct {
	Title       string
	Description string

	// Color is the normalized "#RRGGBB" border color, or empty for the platform default.
	Color string

	Timestamp time.Time
}

var _ Response = (*EmbedResponse)(nil)

// InteractionResponse converts the reply to the payload Discord expects.
func (r *EmbedResponse) InteractionResponse() *discordgo.InteractionResponse {
	embed := &discordgo.MessageEmbed{
		Title:       r.Title,
		Description: r.Description,
		Timestamp:   r.Timestamp.Format(time.RFC3339),
	}
	if value, ok := colorValue(r.Color); ok {
		embed.Color = value
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}
}

// NormalizeColor accepts "RRGGBB" or "#RRGGBB" and returns "#RRGGBB" with the digits as given.
// Anything else reports false.
func NormalizeColor(input string) (string, bool) {
	hex := strings.TrimPrefix(input, "#")
	if !hexColorPattern.MatchString(hex) {
		return "", false
	}
	return "#" + hex, true
}

func colorValue(color string) (int, bool) {
	hex, ok := NormalizeColor(color)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseInt(hex[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	return int(value), true
}
