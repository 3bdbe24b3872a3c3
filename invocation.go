package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

// InvocationState tells how far the handling of an Invocation has proceeded.
type InvocationState int

const (
	// Received is the state of a freshly decoded invocation.
	Received InvocationState = iota
	// Validated means the command is known and its reply is computed.
	Validated
	// UnknownCommand means the command is not in the catalog.
	UnknownCommand
	// Responded means the reply was delivered.
	Responded
	// SendFailed means delivering the reply failed and the fallback is pending.
	SendFailed
	// FallbackSent means the error reply was sent in place of the regular one.
	FallbackSent
)

// String returns the name of the state.
func (s InvocationState) String() string {
	switch s {
	case Received:
		return "received"
	case Validated:
		return "validated"
	case UnknownCommand:
		return "unknown_command"
	case Responded:
		return "responded"
	case SendFailed:
		return "send_failed"
	case FallbackSent:
		return "fallback_sent"
	default:
		return fmt.Sprintf("InvocationState(%d)", int(s))
	}
}

func (s InvocationState) terminal() bool {
	return s == Responded || s == FallbackSent
}

// interactionResponder is the part of the platform client that replies to an interaction.
// *discordgo.Session satisfies this interface.
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Invocation is a sarah.Input implementation that represents one slash command invocation.
type Invocation struct {
	Event       *discordgo.InteractionCreate
	CommandName string
	Arguments   map[string]interface{}

	senderKey string
	sentAt    time.Time
	responder interactionResponder

	mutex sync.Mutex
	state InvocationState
}

var _ sarah.Input = (*Invocation)(nil)

// NewInvocation creates an Invocation that is not tied to a Discord event.
// Such an invocation can be handled by Dispatcher but cannot be replied to.
func NewInvocation(commandName string, arguments map[string]interface{}) *Invocation {
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	return &Invocation{
		CommandName: commandName,
		Arguments:   arguments,
		sentAt:      time.Now(),
		state:       Received,
	}
}

// SenderKey returns a unique key representing the invoking user in the channel.
func (i *Invocation) SenderKey() string {
	return i.senderKey
}

// Message returns the invoked command in its slash form.
func (i *Invocation) Message() string {
	return "/" + i.CommandName
}

// SentAt returns when the interaction was created.
func (i *Invocation) SentAt() time.Time {
	return i.sentAt
}

// ReplyTo returns the invocation itself since a reply can only be sent through its interaction.
func (i *Invocation) ReplyTo() sarah.OutputDestination {
	return i
}

// State returns the current handling state.
func (i *Invocation) State() InvocationState {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	return i.state
}

func (i *Invocation) setState(state InvocationState) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	if i.state.terminal() {
		return
	}
	i.state = state
}

// StringArgument returns the string value given for the named parameter.
func (i *Invocation) StringArgument(name string) (string, bool) {
	s, ok := i.Arguments[name].(string)
	return s, ok
}

// BoolArgument returns the boolean value given for the named parameter.
func (i *Invocation) BoolArgument(name string) (bool, bool) {
	b, ok := i.Arguments[name].(bool)
	return b, ok
}

// reply delivers the response through the interaction.
// When the delivery fails, an ephemeral text with fallbackMessage is sent instead.
// Once any reply is sent, later calls return ErrAlreadyReplied without contacting Discord.
func (i *Invocation) reply(ctx context.Context, response Response, fallbackMessage string) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	if i.state.terminal() || i.state == SendFailed {
		logger.Warnf("Skipping second reply to /%s: %s.", i.CommandName, i.state)
		return ErrAlreadyReplied
	}

	if i.responder == nil || i.Event == nil || i.Event.Interaction == nil {
		return fmt.Errorf("invocation of /%s has no interaction to reply to", i.CommandName)
	}

	if i.state == UnknownCommand {
		// The response already is the error reply.
		return i.sendFallback(ctx, response)
	}

	err := i.responder.InteractionRespond(i.Event.Interaction, response.InteractionResponse(), discordgo.WithContext(ctx))
	if err == nil {
		i.state = Responded
		return nil
	}

	i.state = SendFailed
	logger.Errorf("/%s command error: %+v", i.CommandName, err)

	return i.sendFallback(ctx, &TextResponse{Body: fallbackMessage, Ephemeral: true})
}

// replyError sends an ephemeral error text unless a reply was already sent.
func (i *Invocation) replyError(ctx context.Context, message string) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	if i.state.terminal() || i.state == SendFailed {
		return ErrAlreadyReplied
	}

	if i.responder == nil || i.Event == nil || i.Event.Interaction == nil {
		return fmt.Errorf("invocation of /%s has no interaction to reply to", i.CommandName)
	}

	return i.sendFallback(ctx, &TextResponse{Body: message, Ephemeral: true})
}

// sendFallback makes the one and only error reply attempt. The caller must hold the mutex.
func (i *Invocation) sendFallback(ctx context.Context, response Response) error {
	err := i.responder.InteractionRespond(i.Event.Interaction, response.InteractionResponse(), discordgo.WithContext(ctx))
	i.state = FallbackSent
	if err != nil {
		return fmt.Errorf("failed to send error reply for /%s: %w", i.CommandName, err)
	}
	return nil
}

// InteractionToInvocation converts a chat input command interaction to *Invocation.
// Any other kind of interaction results in ErrNotApplicationCommand.
func InteractionToInvocation(event *discordgo.InteractionCreate) (*Invocation, error) {
	if event == nil || event.Interaction == nil || event.Type != discordgo.InteractionApplicationCommand {
		return nil, ErrNotApplicationCommand
	}

	data := event.ApplicationCommandData()
	if data.CommandType != discordgo.ChatApplicationCommand {
		return nil, ErrNotApplicationCommand
	}

	arguments := make(map[string]interface{}, len(data.Options))
	for _, opt := range data.Options {
		arguments[opt.Name] = opt.Value
	}

	var userID string
	if event.Member != nil && event.Member.User != nil {
		userID = event.Member.User.ID
	} else if event.User != nil {
		userID = event.User.ID
	}

	sentAt, err := discordgo.SnowflakeTimestamp(event.ID)
	if err != nil {
		sentAt = time.Now()
	}

	return &Invocation{
		Event:       event,
		CommandName: data.Name,
		Arguments:   arguments,
		senderKey:   fmt.Sprintf("%s_%s", event.ChannelID, userID),
		sentAt:      sentAt,
		state:       Received,
	}, nil
}
