package discord

import (
	"time"

	"github.com/oklahomer/go-kasumi/logger"
)

// HandlerFunc computes the reply for an invocation of a known command.
type HandlerFunc func(*Invocation) Response

// DispatcherOption defines a function signature for Dispatcher's functional options.
type DispatcherOption func(*Dispatcher)

// WithClock replaces the function that supplies embed timestamps.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// WithUnknownCommandMessage sets the body of the reply to an unknown or failing command.
func WithUnknownCommandMessage(message string) DispatcherOption {
	return func(d *Dispatcher) {
		d.unknownCommandMessage = message
	}
}

// Dispatcher maps an Invocation to the one Response that answers it.
// It holds no mutable state, so Handle may be called from multiple goroutines.
type Dispatcher struct {
	catalog               map[string]*CommandSpec
	handlers              map[string]HandlerFunc
	now                   func() time.Time
	unknownCommandMessage string
}

// NewDispatcher creates a Dispatcher serving the commands of the given catalog.
func NewDispatcher(catalog []*CommandSpec, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		catalog:               catalogIndex(catalog),
		now:                   time.Now,
		unknownCommandMessage: NewConfig().UnknownCommandMessage,
	}
	d.handlers = map[string]HandlerFunc{
		SayCommand:   d.say,
		EmbedCommand: d.embed,
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Handle returns the reply for the given invocation. It never returns nil and never panics.
func (d *Dispatcher) Handle(invocation *Invocation) (response Response) {
	if invocation == nil {
		return d.unknownCommand()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Recovered from panic while handling /%s: %+v", invocation.CommandName, r)
			invocation.setState(UnknownCommand)
			response = d.unknownCommand()
		}
	}()

	handler, ok := d.lookup(invocation.CommandName)
	if !ok {
		logger.Warnf("Received %s: /%s.", ErrUnknownCommand, invocation.CommandName)
		invocation.setState(UnknownCommand)
		return d.unknownCommand()
	}

	response = handler(invocation)
	invocation.setState(Validated)
	return response
}

func (d *Dispatcher) lookup(name string) (HandlerFunc, bool) {
	if _, ok := d.catalog[name]; !ok {
		return nil, false
	}
	handler, ok := d.handlers[name]
	return handler, ok
}

func (d *Dispatcher) unknownCommand() Response {
	return &TextResponse{Body: d.unknownCommandMessage, Ephemeral: true}
}

// say echoes the message verbatim.
func (d *Dispatcher) say(invocation *Invocation) Response {
	message, _ := invocation.StringArgument("message")
	ephemeral, _ := invocation.BoolArgument("ephemeral")

	return &TextResponse{Body: message, Ephemeral: ephemeral}
}

// embed builds an embed. An invalid color is dropped rather than reported.
func (d *Dispatcher) embed(invocation *Invocation) Response {
	title, _ := invocation.StringArgument("title")
	description, _ := invocation.StringArgument("description")

	var color string
	if input, ok := invocation.StringArgument("color"); ok {
		color, _ = NormalizeColor(input)
	}

	return &EmbedResponse{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   d.now(),
	}
}
