package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// FileScoreboard keeps the scoreboard as a single JSON document.
type FileScoreboard struct {
	path string

	mu sync.Mutex
}

func NewFileScoreboard(path string) *FileScoreboard {
	return &FileScoreboard{path: path}
}

func (s *FileScoreboard) Record(e ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries = append(entries, e)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling scores: %w", err)
	}

	return atomicWrite(s.path, data, 0644)
}

func (s *FileScoreboard) All() ([]ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileScoreboard) read() ([]ScoreEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading scores: %w", err)
	}

	var entries []ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshalling scores: %w", err)
	}
	return entries, nil
}
