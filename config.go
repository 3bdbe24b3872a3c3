package discord

import "github.com/bwmarrin/discordgo"

// Config contains configuration variables for the Discord Adapter.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string `json:"token" yaml:"token" env:"DISCORD_TOKEN"`

	// ApplicationID is the ID of the application the slash commands belong to.
	ApplicationID string `json:"application_id" yaml:"application_id" env:"CLIENT_ID"`

	// GuildID is the guild the command catalog is registered in.
	GuildID string `json:"guild_id" yaml:"guild_id" env:"GUILD_ID"`

	// Intents declares the Gateway Intents the bot requires.
	Intents discordgo.Intent `json:"intents" yaml:"intents"`

	// Activity is the game name shown as the bot's presence once connected.
	// Leave this empty to keep the default presence.
	Activity string `json:"activity" yaml:"activity" env:"DISCORD_ACTIVITY"`

	// UnknownCommandMessage is sent when an invocation names a command the bot does not serve.
	UnknownCommandMessage string `json:"unknown_command_message" yaml:"unknown_command_message"`

	// ErrorMessage is sent when delivering a command's reply fails.
	ErrorMessage string `json:"error_message" yaml:"error_message"`

	// CommandErrorMessages overrides ErrorMessage per command name.
	CommandErrorMessages map[string]string `json:"command_error_messages" yaml:"command_error_messages"`
}

// NewConfig creates and returns a new Config instance with default settings.
// Token, ApplicationID and GuildID are empty and must be set before use.
func NewConfig() *Config {
	return &Config{
		Token:                 "",
		ApplicationID:         "",
		GuildID:               "",
		Intents:               discordgo.IntentsGuilds,
		Activity:              "Nord",
		UnknownCommandMessage: "Unknown command.",
		ErrorMessage:          "حدث خطأ",
		CommandErrorMessages: map[string]string{
			EmbedCommand: "حدث خطأ عند إرسال الEmbed",
		},
	}
}

// Validate returns an error when any of the values required to serve commands is missing.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrEmptyToken
	}

	if c.ApplicationID == "" {
		return ErrEmptyApplicationID
	}

	if c.GuildID == "" {
		return ErrEmptyScope
	}

	return nil
}

// errorMessage returns the fallback message for the given command.
func (c *Config) errorMessage(commandName string) string {
	if msg, ok := c.CommandErrorMessages[commandName]; ok && msg != "" {
		return msg
	}
	return c.ErrorMessage
}
