package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	if config.Token != "" {
		t.Errorf("Expected empty token, got %q", config.Token)
	}

	if config.ApplicationID != "" || config.GuildID != "" {
		t.Errorf("Expected empty IDs, got %q and %q", config.ApplicationID, config.GuildID)
	}

	if config.Intents != discordgo.IntentsGuilds {
		t.Errorf("Expected Intents to be %d, got %d", discordgo.IntentsGuilds, config.Intents)
	}

	if config.Activity != "Nord" {
		t.Errorf("Expected Activity to be %q, got %q", "Nord", config.Activity)
	}

	if config.UnknownCommandMessage == "" {
		t.Error("Expected non-empty UnknownCommandMessage")
	}

	if config.ErrorMessage != "حدث خطأ" {
		t.Errorf("Unexpected ErrorMessage %q", config.ErrorMessage)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		expected error
	}{
		{
			name:     "complete",
			modify:   func(*Config) {},
			expected: nil,
		},
		{
			name:     "without token",
			modify:   func(c *Config) { c.Token = "" },
			expected: ErrEmptyToken,
		},
		{
			name:     "without application ID",
			modify:   func(c *Config) { c.ApplicationID = "" },
			expected: ErrEmptyApplicationID,
		},
		{
			name:     "without guild ID",
			modify:   func(c *Config) { c.GuildID = "" },
			expected: ErrEmptyScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			config.Token = "token"
			config.ApplicationID = "app"
			config.GuildID = "guild"
			tt.modify(config)

			if err := config.Validate(); err != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestConfig_errorMessage(t *testing.T) {
	config := NewConfig()

	if msg := config.errorMessage(SayCommand); msg != config.ErrorMessage {
		t.Errorf("Expected generic message for say, got %q", msg)
	}

	if msg := config.errorMessage(EmbedCommand); msg != "حدث خطأ عند إرسال الEmbed" {
		t.Errorf("Expected embed specific message, got %q", msg)
	}

	config.CommandErrorMessages[EmbedCommand] = ""
	if msg := config.errorMessage(EmbedCommand); msg != config.ErrorMessage {
		t.Errorf("Expected empty override to fall back to generic message, got %q", msg)
	}
}
