package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

const (
	// DISCORD is a designated sarah.BotType for Discord integration.
	DISCORD sarah.BotType = "discord"
)

// session is an internal interface that abstracts the discordgo.Session methods
// used by the Adapter. This allows mocking the session in tests.
// *discordgo.Session satisfies this interface.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	UpdateGameStatus(idle int, name string) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// AdapterOption defines a function signature for Adapter's functional options.
type AdapterOption func(adapter *Adapter)

// WithSession creates an AdapterOption with the given *discordgo.Session.
// Use this to inject a pre-configured session.
// If this option is not given, NewAdapter creates a new session from Config.Token.
func WithSession(session *discordgo.Session) AdapterOption {
	return func(adapter *Adapter) {
		adapter.session = session
	}
}

// WithCatalog replaces the command catalog published on Run.
// BuildCatalog is used when this option is not given.
func WithCatalog(catalog []*CommandSpec) AdapterOption {
	return func(adapter *Adapter) {
		adapter.catalog = catalog
	}
}

// Adapter is a sarah.Adapter implementation that serves Discord slash commands.
type Adapter struct {
	config  *Config
	session session
	catalog []*CommandSpec
}

var _ sarah.Adapter = (*Adapter)(nil)

// NewAdapter creates a new Adapter with the given Config and options.
func NewAdapter(config *Config, options ...AdapterOption) (*Adapter, error) {
	adapter := &Adapter{
		config: config,
	}

	for _, opt := range options {
		opt(adapter)
	}

	if config.ApplicationID == "" {
		return nil, ErrEmptyApplicationID
	}

	if config.GuildID == "" {
		return nil, ErrEmptyScope
	}

	if adapter.catalog == nil {
		adapter.catalog = BuildCatalog()
	}

	if adapter.session == nil {
		if config.Token == "" {
			return nil, ErrEmptyToken
		}

		s, err := discordgo.New("Bot " + config.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		s.Identify.Intents = config.Intents
		adapter.session = s
	}

	return adapter, nil
}

// BotType returns a designated BotType for Discord integration.
func (a *Adapter) BotType() sarah.BotType {
	return DISCORD
}

// Run publishes the command catalog, connects to Discord and blocks until the context is canceled.
// A failure to publish is logged and the adapter keeps serving the commands that are already registered.
func (a *Adapter) Run(ctx context.Context, enqueueInput func(sarah.Input) error, notifyErr func(error)) {
	a.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		a.handleReady(r)
	})
	a.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		a.handleInteraction(ctx, i, enqueueInput)
	})

	err := Publish(ctx, a.session, a.config.ApplicationID, a.config.GuildID, a.catalog)
	if err != nil {
		logger.Errorf("Error registering commands: %+v", err)
	}

	err = a.session.Open()
	if err != nil {
		notifyErr(sarah.NewBotNonContinuableError(fmt.Sprintf("failed to open Discord session: %s", err.Error())))
		return
	}

	// Block until the context is canceled.
	<-ctx.Done()

	if closeErr := a.session.Close(); closeErr != nil {
		logger.Errorf("Failed to close Discord session: %+v", closeErr)
	}
}

// handleReady sets the presence once the gateway connection is established.
func (a *Adapter) handleReady(r *discordgo.Ready) {
	if r != nil && r.User != nil {
		logger.Infof("Logged in as %s", r.User.Username)
	}

	if a.config.Activity == "" {
		return
	}

	err := a.session.UpdateGameStatus(0, a.config.Activity)
	if err != nil {
		logger.Warnf("Failed to set presence: %+v", err)
		return
	}
	logger.Infof("Presence set to: Playing %s", a.config.Activity)
}

// handleInteraction converts a slash command interaction and routes it to enqueueInput.
func (a *Adapter) handleInteraction(ctx context.Context, i *discordgo.InteractionCreate, enqueueInput func(sarah.Input) error) {
	invocation, err := InteractionToInvocation(i)
	if err != nil {
		// Components, autocompletion and context menu commands are not served.
		logger.Debugf("Skipping interaction: %+v", err)
		return
	}
	invocation.responder = a.session

	enqueueErr := enqueueInput(invocation)
	if enqueueErr == nil {
		return
	}

	logger.Errorf("Failed to enqueue input: %+v", enqueueErr)
	if err := invocation.replyError(ctx, a.config.errorMessage(invocation.CommandName)); err != nil {
		logger.Errorf("Failed to reply to dropped /%s: %+v", invocation.CommandName, err)
	}
}

// SendMessage delivers the Response computed for an Invocation.
// Each invocation is replied to at most once; a failed delivery is replaced by a single ephemeral error reply.
func (a *Adapter) SendMessage(ctx context.Context, output sarah.Output) {
	invocation, ok := output.Destination().(*Invocation)
	if !ok {
		logger.Errorf("Destination is not instance of *Invocation. %#v.", output.Destination())
		return
	}

	fallbackMessage := a.config.errorMessage(invocation.CommandName)

	response, ok := output.Content().(Response)
	if !ok {
		logger.Warnf("Unexpected output %#v", output)
		if err := invocation.replyError(ctx, fallbackMessage); err != nil {
			logger.Errorf("Failed to reply to /%s: %+v", invocation.CommandName, err)
		}
		return
	}

	if err := invocation.reply(ctx, response, fallbackMessage); err != nil {
		logger.Errorf("Failed to reply to /%s: %+v", invocation.CommandName, err)
	}
}
