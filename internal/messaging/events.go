package messaging

import (
	"fmt"
	"time"
)

// AllSubjects matches every game event subject.
const AllSubjects = "dungeon.>"

// CommandSubject is where a session's successful commands are published.
func CommandSubject(session string) string {
	return fmt.Sprintf("dungeon.%s.command", session)
}

// EndSubject is where a session's final result is published.
func EndSubject(session string) string {
	return fmt.Sprintf("dungeon.%s.end", session)
}

// CommandEvent describes one successful command.
type CommandEvent struct {
	Session string    `json:"session"`
	Verb    string    `json:"verb"`
	Room    string    `json:"room"`
	Score   int       `json:"score"`
	At      time.Time `json:"at"`
}

// EndEvent describes how a session ended.
type EndEvent struct {
	Session string    `json:"session"`
	Player  string    `json:"player"`
	Reason  string    `json:"reason"`
	Score   int       `json:"score"`
	At      time.Time `json:"at"`
}
