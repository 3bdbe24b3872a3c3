package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
)

const (
	// SayCommand is the name of the command that echoes the given message.
	SayCommand = "say"

	// EmbedCommand is the name of the command that replies with an embed.
	EmbedCommand = "embed"
)

// ParameterKind represents the value type of a command parameter.
type ParameterKind int

const (
	// TextParameter accepts a string.
	TextParameter ParameterKind = iota
	// BooleanParameter accepts true or false.
	BooleanParameter
)

// String returns the name of the kind.
func (k ParameterKind) String() string {
	switch k {
	case TextParameter:
		return "text"
	case BooleanParameter:
		return "boolean"
	default:
		return "unknown"
	}
}

func (k ParameterKind) optionType() discordgo.ApplicationCommandOptionType {
	if k == BooleanParameter {
		return discordgo.ApplicationCommandOptionBoolean
	}
	return discordgo.ApplicationCommandOptionString
}

// ParameterSpec describes one argument of a command.
type ParameterSpec struct {
	Name        string
	Kind        ParameterKind
	Required    bool
	Description string
}

// CommandSpec describes one slash command and its ordered parameters.
type CommandSpec struct {
	Name        string
	Description string
	Parameters  []*ParameterSpec
}

// ApplicationCommand converts the spec to the payload Discord expects.
func (c *CommandSpec) ApplicationCommand() *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(c.Parameters))
	for _, p := range c.Parameters {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        p.Kind.optionType(),
			Name:        p.Name,
			Description: p.Description,
			Required:    p.Required,
		})
	}

	return &discordgo.ApplicationCommand{
		Type:        discordgo.ChatApplicationCommand,
		Name:        c.Name,
		Description: c.Description,
		Options:     options,
	}
}

// BuildCatalog returns the commands this bot serves, in registration order.
// Every call returns a fresh, structurally identical catalog.
func BuildCatalog() []*CommandSpec {
	return []*CommandSpec{
		{
			Name:        SayCommand,
			Description: "Make the bot say something",
			Parameters: []*ParameterSpec{
				{Name: "message", Kind: TextParameter, Required: true, Description: "Text to say"},
				{Name: "ephemeral", Kind: BooleanParameter, Required: false, Description: "Send ephemeral (only you see it)"},
			},
		},
		{
			Name:        EmbedCommand,
			Description: "Send an embed with title and description",
			Parameters: []*ParameterSpec{
				{Name: "title", Kind: TextParameter, Required: true, Description: "Embed title"},
				{Name: "description", Kind: TextParameter, Required: true, Description: "Embed description"},
				{Name: "color", Kind: TextParameter, Required: false, Description: "Hex color like #0099ff (optional)"},
			},
		},
	}
}

// CommandPublisher is the part of the platform client that replaces a scope's command set.
// *discordgo.Session satisfies this interface.
type CommandPublisher interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Publish replaces all commands of the given application in the given guild with the catalog.
// Calling this repeatedly with the same catalog leaves the same state on Discord's side.
// A failure is returned as *PublishError.
func Publish(ctx context.Context, publisher CommandPublisher, appID string, scope string, catalog []*CommandSpec) error {
	commands := make([]*discordgo.ApplicationCommand, 0, len(catalog))
	for _, spec := range catalog {
		commands = append(commands, spec.ApplicationCommand())
	}

	logger.Infof("Started refreshing %d application commands in %s.", len(commands), scope)
	_, err := publisher.ApplicationCommandBulkOverwrite(appID, scope, commands, discordgo.WithContext(ctx))
	if err != nil {
		return &PublishError{ApplicationID: appID, Scope: scope, Err: err}
	}
	logger.Infof("Successfully reloaded application commands in %s.", scope)

	return nil
}

// catalogIndex returns the set of command names in the catalog.
func catalogIndex(catalog []*CommandSpec) map[string]*CommandSpec {
	index := make(map[string]*CommandSpec, len(catalog))
	for _, spec := range catalog {
		index[spec.Name] = spec
	}
	return index
}
