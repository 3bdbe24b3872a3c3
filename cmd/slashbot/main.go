// Command slashbot registers the /say and /embed slash commands in a Discord guild and answers them.
//
// Usage:
//
//	export DISCORD_TOKEN="your-bot-token"
//	export CLIENT_ID="your-application-id"
//	export GUILD_ID="your-guild-id"
//	go run ./cmd/slashbot
//
// The same values may be placed in a .env file in the working directory,
// or in the "discord" section of a YAML file given with -config.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-kasumi/worker"
	"github.com/oklahomer/go-sarah/v4"

	"github.com/oklahomer/go-sarah-slashbot"
)

func main() {
	path := flag.String("config", "", "path to application configuration file.")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found, falling back to system environment variables")
	}

	config, err := readConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read configuration: %s\n", err)
		os.Exit(1)
	}

	if err := config.Discord.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Please set DISCORD_TOKEN, CLIENT_ID and GUILD_ID in .env file: %s\n", err)
		os.Exit(1)
	}

	catalog := discord.BuildCatalog()

	adapter, err := discord.NewAdapter(config.Discord, discord.WithCatalog(catalog))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create adapter: %s\n", err)
		os.Exit(1)
	}
	sarah.RegisterBot(sarah.NewBot(adapter))

	dispatcher := discord.NewDispatcher(catalog, discord.WithUnknownCommandMessage(config.Discord.UnknownCommandMessage))
	sarah.RegisterCommandProps(discord.NewCommandProps(dispatcher))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Invocations are queued here and handled by the workers independently of each other.
	sarah.RegisterWorker(worker.Run(ctx, config.Worker))

	err = sarah.Run(ctx, config.Runner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %s\n", err)
		os.Exit(1)
	}

	logger.Infof("Bot is running. Press Ctrl+C to stop.")

	<-ctx.Done()

	logger.Infof("Shutting down...")
}
