package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/oklahomer/go-sarah/v4"
)

// CommandIdentifier is the identifier of the sarah.Command that serves slash commands.
const CommandIdentifier = "slash_commands"

// NewCommandProps creates *sarah.CommandProps that hand every *Invocation to the dispatcher.
// Register the returned value with sarah.RegisterCommandProps.
func NewCommandProps(dispatcher *Dispatcher) *sarah.CommandProps {
	return sarah.NewCommandPropsBuilder().
		BotType(DISCORD).
		Identifier(CommandIdentifier).
		MatchFunc(matchInvocation).
		Func(commandFunc(dispatcher)).
		Instruction(dispatcher.instruction()).
		MustBuild()
}

func matchInvocation(input sarah.Input) bool {
	_, ok := input.(*Invocation)
	return ok
}

func commandFunc(dispatcher *Dispatcher) func(context.Context, sarah.Input) (*sarah.CommandResponse, error) {
	return func(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
		invocation, ok := input.(*Invocation)
		if !ok {
			return nil, fmt.Errorf("%T is not a *discord.Invocation", input)
		}

		return &sarah.CommandResponse{
			Content: dispatcher.Handle(invocation),
		}, nil
	}
}

func (d *Dispatcher) instruction() string {
	names := make([]string, 0, len(d.catalog))
	for name := range d.catalog {
		names = append(names, "/"+name)
	}
	sort.Strings(names)

	return "Slash commands: " + strings.Join(names, ", ")
}
