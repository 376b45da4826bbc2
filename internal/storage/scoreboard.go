package storage

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEntry is one finished game on the scoreboard.
type ScoreEntry struct {
	Id         string    `json:"id"`
	Session    string    `json:"session"`
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	Reason     string    `json:"reason"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewScoreEntry creates an entry stamped with a fresh id and the current time.
func NewScoreEntry(session, player string, score int, reason string) ScoreEntry {
	return ScoreEntry{
		Id:         uuid.NewString(),
		Session:    session,
		Player:     player,
		Score:      score,
		Reason:     reason,
		RecordedAt: time.Now().UTC(),
	}
}

// Scoreboard is an append-only list of final scores.
type Scoreboard interface {
	Record(ScoreEntry) error
	// All returns every entry in the order it was recorded.
	All() ([]ScoreEntry, error)
}
