package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher sends raw data to a subject. NatsServer implements it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// EventPublisher encodes game events and publishes them for one session.
// Delivery is best effort: failures are logged and never reach the game.
type EventPublisher struct {
	pub     Publisher
	session string
}

// NewEventPublisher wraps pub for the given session id. A nil pub yields a
// publisher that drops every event.
func NewEventPublisher(pub Publisher, session string) *EventPublisher {
	return &EventPublisher{pub: pub, session: session}
}

// CommandDone publishes a CommandEvent.
func (p *EventPublisher) CommandDone(ctx context.Context, verb, room string, score int) {
	if p == nil {
		return
	}
	p.publish(ctx, CommandSubject(p.session), CommandEvent{
		Session: p.session,
		Verb:    verb,
		Room:    room,
		Score:   score,
		At:      time.Now().UTC(),
	})
}

// SessionEnded publishes an EndEvent.
func (p *EventPublisher) SessionEnded(ctx context.Context, player, reason string, score int) {
	if p == nil {
		return
	}
	p.publish(ctx, EndSubject(p.session), EndEvent{
		Session: p.session,
		Player:  player,
		Reason:  reason,
		Score:   score,
		At:      time.Now().UTC(),
	})
}

func (p *EventPublisher) publish(ctx context.Context, subject string, event any) {
	if p.pub == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.WarnContext(ctx, "encoding event", "subject", subject, "error", err)
		return
	}

	if err := p.pub.Publish(subject, data); err != nil {
		slog.WarnContext(ctx, "publishing event", "subject", subject, "error", fmt.Errorf("publish: %w", err))
	}
}
