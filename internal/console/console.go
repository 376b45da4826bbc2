package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/messaging"
	"github.com/pixil98/go-dungeon/internal/storage"
)

const (
	banner = "DungeonMini. Type 'help' for the list of commands."
	prompt = "> "
)

// Console is one interactive game session over a line-oriented stream.
type Console struct {
	in      io.Reader
	out     io.Writer
	handler *commands.Handler
	state   *game.GameState

	scores    storage.Scoreboard
	pub       messaging.Publisher
	events    *messaging.EventPublisher
	sessionId string
}

type ConsoleOpt func(*Console)

// WithScoreboard records the final score when the session ends.
func WithScoreboard(s storage.Scoreboard) ConsoleOpt {
	return func(c *Console) {
		c.scores = s
	}
}

// WithPublisher publishes game events for the session.
func WithPublisher(p messaging.Publisher) ConsoleOpt {
	return func(c *Console) {
		c.pub = p
	}
}

// WithSessionId overrides the generated session id.
func WithSessionId(id string) ConsoleOpt {
	return func(c *Console) {
		c.sessionId = id
	}
}

func NewConsole(in io.Reader, out io.Writer, handler *commands.Handler, state *game.GameState, opts ...ConsoleOpt) *Console {
	c := &Console{
		in:        in,
		out:       out,
		handler:   handler,
		state:     state,
		sessionId: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.events = messaging.NewEventPublisher(c.pub, c.sessionId)

	return c
}

// SessionId returns the id events and scores are recorded under.
func (c *Console) SessionId() string {
	return c.sessionId
}

// Start runs the session until the player exits or dies, input ends, or ctx
// is cancelled. Command failures are reported to the player and never end
// the session.
func (c *Console) Start(ctx context.Context) error {
	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(inputChan)
		reader := bufio.NewReader(c.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case inputChan <- line:
				case <-done:
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					inputErrChan <- err
				}
				return
			}
		}
	}()

	slog.InfoContext(ctx, "session started", "session", c.sessionId, "player", c.state.Player.Name)

	if err := c.writeLine(banner); err != nil {
		return err
	}

	for {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "session interrupted", "session", c.sessionId)
			return nil

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					slog.WarnContext(ctx, "reading input", "session", c.sessionId, "error", err)
				default:
				}
				if err := c.writeLine(""); err != nil {
					return err
				}
				c.finish(ctx, "eof")
				return nil
			}

			sig, err := c.handleLine(ctx, line)
			if err != nil {
				return err
			}
			if sig != commands.SignalNone {
				c.finish(ctx, sig.String())
				return nil
			}
		}
	}
}

func (c *Console) handleLine(ctx context.Context, line string) (commands.Signal, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return commands.SignalNone, nil
	}

	// Parse command and arguments
	parts := strings.Fields(line)
	verb := commands.Normalize(parts[0])

	sig, err := c.handler.Exec(ctx, c.state, c.out, verb, parts[1:]...)
	if err != nil {
		var invalid *commands.InvalidCommandError
		if errors.As(err, &invalid) {
			return sig, c.writeLine("Error: " + invalid.Message)
		}

		slog.WarnContext(ctx, "command failed", "session", c.sessionId, "verb", verb, "error", err)
		return sig, c.writeLine(fmt.Sprintf("Unexpected error: %s: %s", errorKind(err), err.Error()))
	}
	if sig != commands.SignalNone {
		return sig, nil
	}

	c.state.AddScore(1)
	c.events.CommandDone(ctx, verb, c.state.Current.Id, c.state.Score)

	return commands.SignalNone, nil
}

// finish records the final score and announces the end of the session.
func (c *Console) finish(ctx context.Context, reason string) {
	player := c.state.Player.Name
	score := c.state.Score

	if c.scores != nil {
		err := c.scores.Record(storage.NewScoreEntry(c.sessionId, player, score, reason))
		if err != nil {
			slog.WarnContext(ctx, "failed to record score", "session", c.sessionId, "error", err)
		}
	}
	c.events.SessionEnded(ctx, player, reason, score)

	slog.InfoContext(ctx, "session ended", "session", c.sessionId, "reason", reason, "score", score)
}

func (c *Console) writeLine(msg string) error {
	_, err := io.WriteString(c.out, msg+"\n")
	return err
}

// errorKind names the type of the first error in err's chain that is not
// an fmt.Errorf wrapper.
func errorKind(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		kind := fmt.Sprintf("%T", e)
		if !strings.HasPrefix(kind, "*fmt.") {
			return kind
		}
	}
	return fmt.Sprintf("%T", err)
}
