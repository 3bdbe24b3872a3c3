package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/oklahomer/go-kasumi/worker"
	"github.com/oklahomer/go-sarah/v4"
	"gopkg.in/yaml.v2"

	"github.com/oklahomer/go-sarah-slashbot"
)

type config struct {
	Runner  *sarah.Config   `json:"runner" yaml:"runner"`
	Worker  *worker.Config  `json:"worker" yaml:"worker"`
	Discord *discord.Config `json:"discord" yaml:"discord"`
}

func newConfig() *config {
	// Use constructor for each config struct, so default values are pre-set.
	return &config{
		Runner:  sarah.NewConfig(),
		Worker:  worker.NewConfig(),
		Discord: discord.NewConfig(),
	}
}

// readConfig populates the default configuration with the YAML file at path, if any,
// and then with the environment variables.
func readConfig(path string) (*config, error) {
	c := newConfig()

	if path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		err = yaml.Unmarshal(body, c)
		if err != nil {
			return nil, fmt.Errorf("failed to read yaml: %w", err)
		}
	}

	err := env.Parse(c.Discord)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	return c, nil
}
