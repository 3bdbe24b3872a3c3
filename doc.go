// Package discord provides a sarah.Adapter implementation that serves Discord slash commands.
//
// On Run, the Adapter replaces the guild's application commands with the catalog from BuildCatalog,
// connects to the gateway and converts each chat input command interaction into *Invocation.
// go-sarah queues the Invocation for its workers, where the command built by NewCommandProps passes it to Dispatcher.
// The Response is then delivered through the interaction exactly once by Adapter.SendMessage.
//
// Two commands are served:
//
//	/say message:<text> [ephemeral:<bool>]
//	/embed title:<text> description:<text> [color:<#RRGGBB>]
package discord
