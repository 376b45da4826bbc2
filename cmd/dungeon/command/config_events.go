package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-dungeon/internal/messaging"
	"github.com/pixil98/go-errors"
)

const defaultEventsStartTimeout = 10 * time.Second

type EventsConfig struct {
	Enabled      bool   `json:"enabled"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (c *EventsConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartTimeout != "" {
		_, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		}
	}
	if c.Port < messaging.RandomPort || c.Port > 65535 {
		el.Add(fmt.Errorf("events: port %d out of range", c.Port))
	}

	return el.Err()
}

func (c *EventsConfig) startTimeout() time.Duration {
	d, err := time.ParseDuration(c.StartTimeout)
	if err != nil || d <= 0 {
		return defaultEventsStartTimeout
	}
	return d
}

func (c *EventsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	opts := []messaging.ServerOpt{
		messaging.WithStartTimeout(c.startTimeout()),
	}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}

	s, err := messaging.NewNatsServer(opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}
