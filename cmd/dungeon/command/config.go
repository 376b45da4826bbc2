package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-errors"
)

type Config struct {
	LogLevel string        `json:"log_level"`
	World    WorldConfig   `json:"world"`
	Rules    RulesConfig   `json:"rules"`
	Storage  StorageConfig `json:"storage"`
	Events   EventsConfig  `json:"events"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.logLevel(); err != nil {
		el.Add(err)
	}

	el.Add(c.World.validate())
	el.Add(c.Storage.validate())
	el.Add(c.Events.validate())

	return el.Err()
}

func (c *Config) logLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("parsing log_level: %w", err)
	}
	return lvl, nil
}

// configureLogging installs a text logger on stderr so log lines never mix
// with the game on stdout.
func (c *Config) configureLogging() {
	lvl, err := c.logLevel()
	if err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

type WorldConfig struct {
	Path string `json:"path"`
}

func (c *WorldConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("world: invalid path %q: %w", c.Path, err)
	}
	return nil
}

// BuildWorld loads the configured world file, or the built-in world when
// no path is set.
func (c *WorldConfig) BuildWorld() (*game.World, error) {
	if c.Path == "" {
		return game.DefaultWorld()
	}
	return game.LoadWorldFile(c.Path)
}

type RulesConfig struct {
	ConsumePotions *bool `json:"consume_potions,omitempty"`
}

func (c *RulesConfig) Build() game.Rules {
	rules := game.DefaultRules()
	if c.ConsumePotions != nil {
		rules.ConsumePotions = *c.ConsumePotions
	}
	return rules
}
