package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
)

func newTestState(t *testing.T) *game.GameState {
	t.Helper()
	w, err := game.DefaultWorld()
	if err != nil {
		t.Fatalf("failed to build world: %v", err)
	}
	return game.NewGameState(w, game.DefaultRules())
}

// memorySaves is an in-memory storage.Storer for snapshots.
type memorySaves struct {
	records map[string]*game.Snapshot
	saveErr error
}

func newMemorySaves() *memorySaves {
	return &memorySaves{records: map[string]*game.Snapshot{}}
}

func (m *memorySaves) Save(id string, s *game.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[id] = s
	return nil
}

func (m *memorySaves) Get(id string) *game.Snapshot {
	return m.records[id]
}

// memoryScores is an in-memory storage.Scoreboard.
type memoryScores struct {
	entries []storage.ScoreEntry
	err     error
}

func (m *memoryScores) Record(e storage.ScoreEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryScores) All() ([]storage.ScoreEntry, error) {
	return m.entries, m.err
}

type testRig struct {
	handler *Handler
	saves   *memorySaves
	scores  *memoryScores
	state   *game.GameState
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	saves := newMemorySaves()
	scores := &memoryScores{}
	h, err := NewGameHandler(saves, scores)
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}
	return &testRig{handler: h, saves: saves, scores: scores, state: newTestState(t)}
}

// run executes one input line and returns what it printed.
func (r *testRig) run(t *testing.T, line string) (string, Signal, error) {
	t.Helper()
	var out bytes.Buffer
	parts := strings.Fields(line)
	sig, err := r.handler.Exec(context.Background(), r.state, &out, parts[0], parts[1:]...)
	return out.String(), sig, err
}

// mustRun executes one input line and fails the test on error.
func (r *testRig) mustRun(t *testing.T, line string) string {
	t.Helper()
	out, _, err := r.run(t, line)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", line, err)
	}
	return out
}

func assertInvalidCommand(t *testing.T, err error, contains string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected invalid command containing %q, got nil", contains)
	}
	if _, ok := err.(*InvalidCommandError); !ok {
		t.Fatalf("expected *InvalidCommandError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), contains) {
		t.Errorf("error %q does not contain %q", err.Error(), contains)
	}
}
