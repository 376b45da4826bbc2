package storage

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// scoreRecord is the table row behind SQLScoreboard.
type scoreRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	EntryID    string `gorm:"uniqueIndex;size:36"`
	Session    string `gorm:"index;size:36"`
	Player     string
	Score      int
	Reason     string
	RecordedAt time.Time
}

func (scoreRecord) TableName() string {
	return "scores"
}

// SQLScoreboard keeps the scoreboard in a database table.
type SQLScoreboard struct {
	db *gorm.DB
}

// OpenSQLiteScoreboard opens (creating if needed) a SQLite scoreboard at dsn.
func OpenSQLiteScoreboard(dsn string) (*SQLScoreboard, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening scoreboard database: %w", err)
	}
	return NewSQLScoreboard(db)
}

// NewSQLScoreboard wraps an open database, migrating the scores table.
func NewSQLScoreboard(db *gorm.DB) (*SQLScoreboard, error) {
	if err := db.AutoMigrate(&scoreRecord{}); err != nil {
		return nil, fmt.Errorf("migrating scores table: %w", err)
	}
	return &SQLScoreboard{db: db}, nil
}

func (s *SQLScoreboard) Record(e ScoreEntry) error {
	rec := &scoreRecord{
		EntryID:    e.Id,
		Session:    e.Session,
		Player:     e.Player,
		Score:      e.Score,
		Reason:     e.Reason,
		RecordedAt: e.RecordedAt,
	}
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("recording score: %w", err)
	}
	return nil
}

func (s *SQLScoreboard) All() ([]ScoreEntry, error) {
	var recs []scoreRecord
	if err := s.db.Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}

	entries := make([]ScoreEntry, len(recs))
	for i, r := range recs {
		entries[i] = ScoreEntry{
			Id:         r.EntryID,
			Session:    r.Session,
			Player:     r.Player,
			Score:      r.Score,
			Reason:     r.Reason,
			RecordedAt: r.RecordedAt,
		}
	}
	return entries, nil
}

// Close releases the underlying database connection.
func (s *SQLScoreboard) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
